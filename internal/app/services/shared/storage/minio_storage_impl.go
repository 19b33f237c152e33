package storage

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

const presignedURLExpiry = 15 * time.Minute

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.StorageService {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) PresignedAttachmentURL(ctx context.Context, objectName string) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, presignedURLExpiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, m.BucketName)
	}
	return presignedURL.String(), nil
}
