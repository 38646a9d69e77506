// Package store provides the persistence boundary for imported videos.
// The extraction engine itself never touches storage; the import handler
// talks to an interface and this in-memory implementation stands in for
// whatever database the embedding product uses.
package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/reelscout/reelscout/models"
)

// ErrNotFound is returned when a video ID does not exist.
var ErrNotFound = errors.New("store: video not found")

// Memory is a mutex-guarded in-memory video store.
type Memory struct {
	mu     sync.RWMutex
	videos map[string]*models.Video
	order  []string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{videos: make(map[string]*models.Video)}
}

// CreateVideo stores a copy of v with a fresh ID and creation timestamp,
// returning the stored record.
func (m *Memory) CreateVideo(_ context.Context, v *models.Video) (*models.Video, error) {
	stored := *v
	stored.ID = "vid-" + randomID()
	stored.CreatedAt = time.Now().Unix()

	m.mu.Lock()
	m.videos[stored.ID] = &stored
	m.order = append(m.order, stored.ID)
	m.mu.Unlock()

	return &stored, nil
}

// GetVideo returns the video with the given ID, or ErrNotFound.
func (m *Memory) GetVideo(_ context.Context, id string) (*models.Video, error) {
	m.mu.RLock()
	v, ok := m.videos[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	copied := *v
	return &copied, nil
}

// ListVideos returns all stored videos in insertion order.
func (m *Memory) ListVideos(_ context.Context) ([]*models.Video, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.Video, 0, len(m.order))
	for _, id := range m.order {
		copied := *m.videos[id]
		out = append(out, &copied)
	}
	return out, nil
}

func randomID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().String()))[:16]
	}
	return hex.EncodeToString(b)
}
