package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listAvatarsResult = `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
<Name>avatars</Name><Prefix>user-1/</Prefix><KeyCount>2</KeyCount><MaxKeys>1000</MaxKeys><IsTruncated>false</IsTruncated>
<Contents><Key>user-1/avatar-1.png</Key><Size>10</Size><ETag>"a1"</ETag><LastModified>2024-05-01T10:00:00.000Z</LastModified><StorageClass>STANDARD</StorageClass></Contents>
<Contents><Key>user-1/avatar-2.png</Key><Size>12</Size><ETag>"a2"</ETag><LastModified>2024-05-02T10:00:00.000Z</LastModified><StorageClass>STANDARD</StorageClass></Contents>
</ListBucketResult>`

const accessDeniedResult = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>AccessDenied</Code><Message>Access Denied</Message><BucketName>avatars</BucketName><RequestId>r-1</RequestId></Error>`

func newTestMinioStorage(t *testing.T, handler http.HandlerFunc) *minioStorage {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := minio.New(strings.TrimPrefix(server.URL, "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4("minio", "minio-secret", ""),
		Secure: false,
		Region: "us-east-1",
	})
	require.NoError(t, err)

	return &minioStorage{MinioClient: client, PublicBaseURL: "https://cdn.theralink.test"}
}

func TestMinioStorage_ListObjects(t *testing.T) {
	t.Run("collects every key under the prefix", func(t *testing.T) {
		store := newTestMinioStorage(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "user-1/", r.URL.Query().Get("prefix"))
			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write([]byte(listAvatarsResult))
		})

		names, err := store.ListObjects(context.Background(), "avatars", "user-1/")
		require.NoError(t, err)
		assert.Equal(t, []string{"user-1/avatar-1.png", "user-1/avatar-2.png"}, names)
	})

	t.Run("listing error", func(t *testing.T) {
		store := newTestMinioStorage(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(accessDeniedResult))
		})

		names, err := store.ListObjects(context.Background(), "avatars", "user-1/")

		assert.Nil(t, names)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})
}

func TestMinioStorage_PublicURL(t *testing.T) {
	store := NewMinioStorage(nil, "https://cdn.theralink.test/")

	url := store.PublicURL("avatars", "user-1/avatar-1700000000.png")

	assert.Equal(t, "https://cdn.theralink.test/avatars/user-1/avatar-1700000000.png", url)
}
