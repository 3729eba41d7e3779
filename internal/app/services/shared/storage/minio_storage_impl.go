package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/Bricklabsai/theralink/internal/app/contracts"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient   *minio.Client
	PublicBaseURL string
}

func NewMinioStorage(minioClient *minio.Client, publicBaseURL string) contracts.Storage {
	return &minioStorage{
		MinioClient:   minioClient,
		PublicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// ListObjects collects every key under prefix. Returning early cancels the
// listing so the client goroutine does not block on an unread channel.
func (m *minioStorage) ListObjects(ctx context.Context, bucketName, prefix string) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var objectNames []string
	objects := m.MinioClient.ListObjects(ctx, bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})
	for object := range objects {
		if object.Err != nil {
			return nil, exceptions.ErrMinioListObjects(object.Err, bucketName)
		}
		objectNames = append(objectNames, object.Key)
	}
	return objectNames, nil
}

func (m *minioStorage) RemoveObjects(ctx context.Context, bucketName string, objectNames []string) error {
	for _, objectName := range objectNames {
		err := m.MinioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
		if err != nil {
			return exceptions.ErrMinioRemoveObject(err, bucketName)
		}
	}
	return nil
}

func (m *minioStorage) UploadObject(ctx context.Context, input *contracts.UploadObjectInput) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, input.BucketName, input.ObjectName, input.Reader, input.Size, minio.PutObjectOptions{
		ContentType:  input.ContentType,
		CacheControl: input.CacheControl,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, input.BucketName)
	}
	return input.ObjectName, nil
}

// PublicURL builds a path style URL for an object in a public bucket.
func (m *minioStorage) PublicURL(bucketName, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", m.PublicBaseURL, bucketName, objectName)
}
