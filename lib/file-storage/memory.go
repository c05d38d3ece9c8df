package filestorage

import (
	"context"
	"sync"

	"job-tracker-backend/models"
)

// memoryStorage keeps blobs in process memory, used when no object storage is configured.
type memoryStorage struct {
	mu    sync.RWMutex
	blobs map[string]map[string][]byte
}

func NewMemoryInstance() Provider {
	return &memoryStorage{blobs: map[string]map[string][]byte{}}
}

func (m *memoryStorage) Upload(ctx context.Context, bucket, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blobs[bucket]; !ok {
		m.blobs[bucket] = map[string][]byte{}
	}
	stored := make([]byte, len(content))
	copy(stored, content)
	m.blobs[bucket][name] = stored
	return nil
}

func (m *memoryStorage) Download(ctx context.Context, bucket, name string) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.blobs[bucket][name]
	if !ok {
		return nil, "", models.ErrFileNotFound
	}
	result := make([]byte, len(content))
	copy(result, content)
	return result, ContentTypeOctetStream, nil
}
