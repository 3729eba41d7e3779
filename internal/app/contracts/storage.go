package contracts

import (
	"context"
	"io"
)

type UploadObjectInput struct {
	BucketName   string
	ObjectName   string
	Reader       io.Reader
	Size         int64
	ContentType  string
	CacheControl string
}

type Storage interface {
	ListObjects(ctx context.Context, bucketName, prefix string) ([]string, error)
	RemoveObjects(ctx context.Context, bucketName string, objectNames []string) error
	UploadObject(ctx context.Context, input *UploadObjectInput) (string, error)
	PublicURL(bucketName, objectName string) string
}
