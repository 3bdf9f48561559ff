package s3

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

// objectInfo is the subset of object metadata kept with a fetched alignment.
type objectInfo struct {
	Size         int64
	ETag         string
	LastModified time.Time
}

// objectAPI is the part of the store the source depends on.
type objectAPI interface {
	GetObject(ctx context.Context, bucket, key string) ([]byte, objectInfo, error)
	ListKeys(ctx context.Context, bucket, prefix string) ([]string, error)
	Endpoint() string
}

// minioAPI implements objectAPI with a MinIO client.
type minioAPI struct {
	client *minio.Client
}

// newMinioAPI builds a MinIO client from settings.
func newMinioAPI(cfg domain.S3Settings) (*minioAPI, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}
	return &minioAPI{client: client}, nil
}

func (m *minioAPI) GetObject(ctx context.Context, bucket, key string) ([]byte, objectInfo, error) {
	obj, err := m.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, objectInfo{}, wrapError(err, bucket, key)
	}
	defer obj.Close()

	stat, err := obj.Stat()
	if err != nil {
		return nil, objectInfo{}, wrapError(err, bucket, key)
	}

	content, err := io.ReadAll(obj)
	if err != nil {
		return nil, objectInfo{}, wrapError(err, bucket, key)
	}

	return content, objectInfo{
		Size:         stat.Size,
		ETag:         stat.ETag,
		LastModified: stat.LastModified,
	}, nil
}

func (m *minioAPI) ListKeys(ctx context.Context, bucket, prefix string) ([]string, error) {
	var keys []string
	for obj := range m.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, wrapError(obj.Err, bucket, prefix)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

func (m *minioAPI) Endpoint() string {
	return m.client.EndpointURL().Host
}
