package cache

import (
	"testing"

	"github.com/reelscout/reelscout/models"
)

func TestCacheGetSet(t *testing.T) {
	c := New(10)
	key := Key("https://site.example/p")

	if _, hit := c.Get(key, 60000); hit {
		t.Error("unexpected hit on empty cache")
	}

	c.Set(key, &models.PreviewResponse{Success: true})

	resp, hit := c.Get(key, 60000)
	if !hit || !resp.Success {
		t.Errorf("expected hit, got (%+v, %v)", resp, hit)
	}
}

func TestCacheMaxAgeZeroDisablesLookup(t *testing.T) {
	c := New(10)
	key := Key("https://site.example/p")
	c.Set(key, &models.PreviewResponse{Success: true})

	if _, hit := c.Get(key, 0); hit {
		t.Error("maxAge 0 must bypass the cache")
	}
}

func TestCacheEvictsAtCapacity(t *testing.T) {
	c := New(2)
	c.Set(Key("a"), &models.PreviewResponse{})
	c.Set(Key("b"), &models.PreviewResponse{})
	c.Set(Key("c"), &models.PreviewResponse{})

	hits := 0
	for _, u := range []string{"a", "b", "c"} {
		if _, hit := c.Get(Key(u), 60000); hit {
			hits++
		}
	}
	if hits != 2 {
		t.Errorf("expected capacity of 2 after eviction, got %d hits", hits)
	}
}

func TestKeyIsStable(t *testing.T) {
	if Key("https://a.example") != Key("https://a.example") {
		t.Error("same URL produced different keys")
	}
	if Key("https://a.example") == Key("https://b.example") {
		t.Error("different URLs collided")
	}
}
