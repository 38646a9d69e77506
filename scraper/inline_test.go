package scraper

import (
	"testing"

	"github.com/reelscout/reelscout/models"
)

func TestInlineVideoBlocks(t *testing.T) {
	html := `<html><body>
		<video poster="/img/poster.jpg" src="/media/main.mp4">
			<source src="/media/alt.webm" type="video/webm">
			<source src="/media/alt.m3u8" type="application/x-mpegurl">
		</video>
		<video src="https://cdn.example/second.mp4"></video>
	</body></html>`

	result := extract(testPageURL(t), html)

	if result.ThumbnailURL != "https://site.example/img/poster.jpg" {
		t.Errorf("poster thumbnail = %q", result.ThumbnailURL)
	}

	byURL := make(map[string]models.VideoSource)
	for _, s := range result.VideoSources {
		byURL[s.URL] = s
	}

	main, ok := byURL["https://site.example/media/main.mp4"]
	if !ok || main.Label != "Inline video 1" {
		t.Errorf("main src candidate = %+v", main)
	}
	alt, ok := byURL["https://site.example/media/alt.webm"]
	if !ok || alt.Label != "Video source 1.1" || alt.MimeType != "video/webm" {
		t.Errorf("nested source candidate = %+v", alt)
	}
	stream, ok := byURL["https://site.example/media/alt.m3u8"]
	if !ok || stream.Label != "Video source 1.2" || stream.Type != models.SourceTypeHLS {
		t.Errorf("hls source candidate = %+v", stream)
	}
	second, ok := byURL["https://cdn.example/second.mp4"]
	if !ok || second.Label != "Inline video 2" {
		t.Errorf("second video candidate = %+v", second)
	}
}

func TestDirectURLFallback(t *testing.T) {
	html := `<html><body>
		<script>var player = {src: "https://cdn.example/hidden.m3u8?token=abc"};</script>
		<p>See https://cdn.example/clip.mp4 for the demo.</p>
	</body></html>`

	result := extract(testPageURL(t), html)
	if len(result.VideoSources) != 2 {
		t.Fatalf("sources = %+v, want 2 detected", result.VideoSources)
	}
	for _, s := range result.VideoSources {
		if s.Label != "Detected video" {
			t.Errorf("label = %q, want Detected video", s.Label)
		}
	}
	// file before hls
	if result.VideoSources[0].URL != "https://cdn.example/clip.mp4" {
		t.Errorf("sort order wrong: %+v", result.VideoSources)
	}
}

func TestDataDurationAttributes(t *testing.T) {
	html := `<html><body>
		<div class="player" data-duration="PT2M5S"></div>
		<div data-duration="bogus"></div>
	</body></html>`

	result := extract(testPageURL(t), html)
	if result.DurationSeconds != 125 {
		t.Errorf("duration = %d, want 125", result.DurationSeconds)
	}
}

func TestNoVideoSignalsYieldsEmptySources(t *testing.T) {
	html := `<html><head><title>Plain page</title></head>
		<body><p>No media here.</p></body></html>`

	result := extract(testPageURL(t), html)
	if len(result.VideoSources) != 0 {
		t.Errorf("expected no sources, got %+v", result.VideoSources)
	}
	if result.Title != "Plain page" {
		t.Errorf("title = %q", result.Title)
	}
}

func TestUnknownTypesFilteredFromResult(t *testing.T) {
	html := `<html><head>
		<meta property="og:video" content="https://cdn.example/watch/12345">
	</head></html>`

	result := extract(testPageURL(t), html)
	for _, s := range result.VideoSources {
		if s.Type == models.SourceTypeUnknown {
			t.Errorf("unknown-typed source leaked into result: %+v", s)
		}
	}
	if len(result.VideoSources) != 0 {
		t.Errorf("expected og:video without type evidence to be filtered, got %+v", result.VideoSources)
	}
}
