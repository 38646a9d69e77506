package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/reelscout/reelscout/config"
	"github.com/reelscout/reelscout/models"
	"github.com/reelscout/reelscout/store"
)

// stubScraper returns a canned result or error without any network access.
type stubScraper struct {
	result *models.ScrapeResult
	err    error
}

func (s *stubScraper) ScrapeProductPage(_ context.Context, _ string) (*models.ScrapeResult, error) {
	return s.result, s.err
}

func importServer(sc ProductScraper, st *store.Memory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/import", ImportVideo(sc, st, config.WebhookConfig{}))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func scrapedFixture() *models.ScrapeResult {
	return &models.ScrapeResult{
		OriginalURL:  "https://site.example/p",
		CanonicalURL: "https://site.example/products/demo",
		Title:        "Scraped Title",
		Description:  "Scraped description",
		ThumbnailURL: "https://cdn.example/t.jpg",
		Tags:         []string{"scraped", "demo"},
		VideoSources: []models.VideoSource{
			{URL: "https://cdn.example/a.mp4", Type: models.SourceTypeFile},
			{URL: "https://cdn.example/b.m3u8", Type: models.SourceTypeHLS},
		},
		DurationSeconds: 45,
	}
}

func TestImportMergesOverrides(t *testing.T) {
	st := store.NewMemory()
	r := importServer(&stubScraper{result: scrapedFixture()}, st)

	w := postJSON(t, r, "/import", models.ImportRequest{
		URL:               "https://site.example/p",
		Title:             "Override Title",
		PreferredVideoURL: "https://cdn.example/b.m3u8",
		Tags:              []string{"user-tag", "scraped"},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp models.ImportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	v := resp.Video
	if v == nil {
		t.Fatal("no video in response")
	}
	if v.Title != "Override Title" {
		t.Errorf("title = %q, override must win", v.Title)
	}
	if v.Description != "Scraped description" {
		t.Errorf("description = %q, scraped value must fill the gap", v.Description)
	}
	if v.ProductURL != "https://site.example/products/demo" {
		t.Errorf("product url = %q, want canonical", v.ProductURL)
	}
	if v.VideoURL != "https://cdn.example/b.m3u8" || v.SourceType != models.SourceTypeHLS {
		t.Errorf("preferred source not selected: %q (%s)", v.VideoURL, v.SourceType)
	}
	if v.DurationSeconds != 45 {
		t.Errorf("duration = %d", v.DurationSeconds)
	}
	wantTags := []string{"user-tag", "scraped", "demo"}
	if len(v.Tags) != len(wantTags) {
		t.Fatalf("tags = %v, want %v", v.Tags, wantTags)
	}
	for i, want := range wantTags {
		if v.Tags[i] != want {
			t.Errorf("tags[%d] = %q, want %q", i, v.Tags[i], want)
		}
	}

	// The record is retrievable through the store boundary.
	if _, err := st.GetVideo(context.Background(), v.ID); err != nil {
		t.Errorf("stored video not found: %v", err)
	}
}

func TestImportDefaultsToFirstSource(t *testing.T) {
	r := importServer(&stubScraper{result: scrapedFixture()}, store.NewMemory())

	w := postJSON(t, r, "/import", models.ImportRequest{URL: "https://site.example/p"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}

	var resp models.ImportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Video.VideoURL != "https://cdn.example/a.mp4" {
		t.Errorf("video url = %q, want first source", resp.Video.VideoURL)
	}
}

func TestImportNoVideoFound(t *testing.T) {
	result := scrapedFixture()
	result.VideoSources = nil
	r := importServer(&stubScraper{result: result}, store.NewMemory())

	w := postJSON(t, r, "/import", models.ImportRequest{URL: "https://site.example/p"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}

	var resp models.ImportResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error == nil || resp.Error.Code != models.ErrCodeNoVideo {
		t.Errorf("error = %+v, want %s", resp.Error, models.ErrCodeNoVideo)
	}
}

func TestImportScrapeErrorsMapToStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{models.ErrCodeInvalidURL, http.StatusBadRequest},
		{models.ErrCodeContentType, http.StatusBadRequest},
		{models.ErrCodeHTTPError, http.StatusBadGateway},
		{models.ErrCodeFetchFailed, http.StatusBadGateway},
		{models.ErrCodeTimeout, http.StatusGatewayTimeout},
		{models.ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			stub := &stubScraper{err: models.NewScrapeError(tt.code, "boom", nil)}
			r := importServer(stub, store.NewMemory())

			w := postJSON(t, r, "/import", models.ImportRequest{URL: "https://site.example/p"})
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestImportRejectsMissingURL(t *testing.T) {
	r := importServer(&stubScraper{result: scrapedFixture()}, store.NewMemory())

	w := postJSON(t, r, "/import", map[string]string{"title": "no url"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
