package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/reelscout/reelscout/cache"
	"github.com/reelscout/reelscout/models"
)

func previewServer(sc ProductScraper, cc *cache.Cache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/preview", Preview(sc, cc))
	return r
}

func TestPreviewReturnsResult(t *testing.T) {
	r := previewServer(&stubScraper{result: scrapedFixture()}, nil)

	w := postJSON(t, r, "/preview", models.PreviewRequest{URL: "https://site.example/p"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp models.PreviewResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Result == nil {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Result.Title != "Scraped Title" {
		t.Errorf("title = %q", resp.Result.Title)
	}
	if len(resp.Result.VideoSources) != 2 {
		t.Errorf("sources = %+v, preview must expose all sources", resp.Result.VideoSources)
	}
}

func TestPreviewCacheHit(t *testing.T) {
	cc := cache.New(10)
	r := previewServer(&stubScraper{result: scrapedFixture()}, cc)

	first := postJSON(t, r, "/preview", models.PreviewRequest{URL: "https://site.example/p", MaxAge: 60000})
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d", first.Code)
	}
	var firstResp models.PreviewResponse
	if err := json.Unmarshal(first.Body.Bytes(), &firstResp); err != nil {
		t.Fatal(err)
	}
	if firstResp.CacheStatus != "miss" {
		t.Errorf("first cache status = %q, want miss", firstResp.CacheStatus)
	}

	second := postJSON(t, r, "/preview", models.PreviewRequest{URL: "https://site.example/p", MaxAge: 60000})
	var secondResp models.PreviewResponse
	if err := json.Unmarshal(second.Body.Bytes(), &secondResp); err != nil {
		t.Fatal(err)
	}
	if secondResp.CacheStatus != "hit" {
		t.Errorf("second cache status = %q, want hit", secondResp.CacheStatus)
	}
}

func TestPreviewErrorEnvelope(t *testing.T) {
	stub := &stubScraper{err: models.NewScrapeError(models.ErrCodeContentType, "expected an HTML page", nil)}
	r := previewServer(stub, nil)

	w := postJSON(t, r, "/preview", models.PreviewRequest{URL: "https://site.example/feed.json"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp models.PreviewResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success || resp.Error == nil || resp.Error.Code != models.ErrCodeContentType {
		t.Errorf("resp = %+v", resp)
	}
}
