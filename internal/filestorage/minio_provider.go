package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/anaphygon/portfolio/internal/usecase"
)

func NewMinIOStorage(bucket, publicPath, endpoint, accessKeyID, secretAccessKey string) *MinIOStorage {
	m, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: true,
	})
	if err != nil {
		panic(err)
	}
	return &MinIOStorage{
		client:     m,
		bucket:     bucket,
		publicPath: publicPath,
	}
}

type MinIOStorage struct {
	client     *minio.Client
	bucket     string
	publicPath string
}

func (f *MinIOStorage) Store(ctx context.Context, up usecase.Upload) (string, error) {
	name := uuid.NewString() + filepath.Ext(up.Name)
	key := path.Join(f.publicPath, name)

	_, err := f.client.PutObject(ctx, f.bucket, key,
		bytes.NewReader(up.Content), int64(len(up.Content)),
		minio.PutObjectOptions{ContentType: up.ContentType},
	)
	if err != nil {
		return "", err
	}
	return "/" + name, nil
}

func (f *MinIOStorage) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	key := path.Join(f.publicPath, strings.TrimPrefix(ref, "/"))
	return f.client.GetObject(ctx, f.bucket, key, minio.GetObjectOptions{})
}

func (f *MinIOStorage) Delete(ctx context.Context, ref string) error {
	key := path.Join(f.publicPath, strings.TrimPrefix(ref, "/"))
	return f.client.RemoveObject(ctx, f.bucket, key, minio.RemoveObjectOptions{})
}

func (f *MinIOStorage) GetPublicURL(_ context.Context) (string, error) {
	return fmt.Sprintf("%s/%s/%s", f.client.EndpointURL(), f.bucket, f.publicPath), nil
}
