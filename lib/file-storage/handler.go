package filestorage

import (
	"context"

	"github.com/minio/minio-go/v7"
)

const ContentTypeOctetStream = "application/octet-stream"

// Provider stores named blobs in buckets.
type Provider interface {
	// Upload creates the bucket if needed and replaces any blob with the same name.
	Upload(ctx context.Context, bucket, name string, content []byte) error
	// Download returns the blob content and its content type.
	Download(ctx context.Context, bucket, name string) ([]byte, string, error)
}

var Instance Provider

func NewHandler(s3client *minio.Client, region string) {
	Instance = NewInstance(s3client, region)
}
