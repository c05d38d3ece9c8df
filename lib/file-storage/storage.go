package filestorage

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-tracker-backend/models"
	s3client "job-tracker-backend/s3"
)

type impl struct {
	s3client *minio.Client
	region   string
}

func NewInstance(client *minio.Client, region string) Provider {
	return &impl{
		s3client: client,
		region:   region,
	}
}

func (i impl) Upload(ctx context.Context, bucket, name string, content []byte) error {
	logger := log.WithField("bucket", bucket).WithField("blob", name)
	if err := s3client.MakeBucket(ctx, i.s3client, bucket, i.region); err != nil {
		logger.WithError(err).Error("failed to create bucket")
		return errors.Wrap(err, "failed to create bucket")
	}
	err := i.s3client.RemoveObject(ctx, bucket, name, minio.RemoveObjectOptions{})
	if err != nil && !isNotFound(err) {
		logger.WithError(err).Error("failed to remove previous blob")
		return errors.Wrap(err, "failed to remove previous blob")
	}
	_, err = i.s3client.PutObject(ctx, bucket, name, bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: ContentTypeOctetStream})
	if err != nil {
		logger.WithError(err).Error("failed to upload blob")
		return errors.Wrap(err, "failed to upload blob")
	}
	return nil
}

func (i impl) Download(ctx context.Context, bucket, name string) ([]byte, string, error) {
	obj, err := i.s3client.GetObject(ctx, bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", i.downloadError(err)
	}
	defer obj.Close()
	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", i.downloadError(err)
	}
	return body, ContentTypeOctetStream, nil
}

func (i impl) downloadError(err error) error {
	if isNotFound(err) {
		return models.ErrFileNotFound
	}
	return errors.Wrap(err, "failed to download blob")
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.StatusCode == http.StatusNotFound || resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
}
