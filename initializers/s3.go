package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"job-tracker-backend/config"
	filestorage "job-tracker-backend/lib/file-storage"
	s3client "job-tracker-backend/s3"
)

func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 endpoint is not configured, files are kept in memory")
		filestorage.Instance = filestorage.NewMemoryInstance()
		return
	}
	minioClient, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		panic(err.Error())
	}

	_, err = minioClient.ListBuckets(ctx)
	if err != nil {
		log.WithError(err).Error("S3 connection check failed, ListBuckets returned an error")
	}

	s3client.Client = minioClient
	filestorage.NewHandler(s3client.Client, config.Conf.S3.Region)
	log.Info("S3 client initialized")
}
