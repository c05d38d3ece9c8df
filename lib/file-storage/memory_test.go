package filestorage

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"job-tracker-backend/models"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryInstance()

	t.Run(`upload then download`, func(t *testing.T) {
		require.Nil(t, storage.Upload(ctx, "apps", "a_resume.pdf", []byte("v1")))
		body, contentType, err := storage.Download(ctx, "apps", "a_resume.pdf")
		require.Nil(t, err)
		require.Equal(t, []byte("v1"), body)
		require.Equal(t, ContentTypeOctetStream, contentType)
	})

	t.Run(`same name overwrites`, func(t *testing.T) {
		require.Nil(t, storage.Upload(ctx, "apps", "a_resume.pdf", []byte("v2")))
		body, _, err := storage.Download(ctx, "apps", "a_resume.pdf")
		require.Nil(t, err)
		require.Equal(t, []byte("v2"), body)
	})

	t.Run(`buckets are separate`, func(t *testing.T) {
		_, _, err := storage.Download(ctx, "users", "a_resume.pdf")
		require.True(t, errors.Is(err, models.ErrFileNotFound))
	})
}
