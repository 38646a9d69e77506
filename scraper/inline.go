package scraper

import (
	"fmt"
	"regexp"
)

var (
	videoBlockPattern   = regexp.MustCompile(`(?is)<video\b([^>]*)>(.*?)</video>`)
	sourceTagPattern    = regexp.MustCompile(`(?is)<source\b[^>]*>`)
	dataDurationPattern = regexp.MustCompile(`(?is)\bdata-duration\s*=\s*(?:"([^"]*)"|'([^']*)')`)

	// directURLPattern finds bare media URLs anywhere in the document as a
	// last-resort signal, including inside script bodies.
	directURLPattern = regexp.MustCompile(`(?i)https?://[^\s"'<>\\]+\.(?:mp4|m3u8|webm|mov|m4v)(?:\?[^\s"'<>\\]*)?`)
)

// collectInlineVideos scans each <video ...>...</video> block: the tag's
// poster feeds the thumbnail candidates, its src and every nested
// <source> tag feed the source registry.
func collectInlineVideos(e *extraction, html string) {
	for i, block := range videoBlockPattern.FindAllStringSubmatch(html, -1) {
		attrs := parseTagAttrs(block[1])

		if poster := attrs["poster"]; poster != "" {
			e.addThumbnail(poster)
		}
		if src := attrs["src"]; src != "" {
			e.sources.add(src, "", fmt.Sprintf("Inline video %d", i+1))
		}

		for j, tag := range sourceTagPattern.FindAllString(block[2], -1) {
			sourceAttrs := parseTagAttrs(tag)
			if src := sourceAttrs["src"]; src != "" {
				e.sources.add(src, sourceAttrs["type"], fmt.Sprintf("Video source %d.%d", i+1, j+1))
			}
		}
	}
}

// collectDirectURLs brute-force matches media-file URLs in the raw
// document text.
func collectDirectURLs(e *extraction, html string) {
	for _, match := range directURLPattern.FindAllString(html, -1) {
		e.sources.add(match, "", "Detected video")
	}
}

// collectDataDurations scans data-duration="..." attributes for duration
// candidates.
func collectDataDurations(e *extraction, html string) {
	for _, m := range dataDurationPattern.FindAllStringSubmatch(html, -1) {
		value := m[1]
		if value == "" {
			value = m[2]
		}
		e.addDuration(value)
	}
}
