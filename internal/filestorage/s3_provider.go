package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/anaphygon/portfolio/internal/usecase"
)

type S3Storage struct {
	client     *s3.Client
	bucket     string
	publicPath string
	region     string
}

func NewS3Storage(bucket, publicPath string) *S3Storage {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		panic(err)
	}
	return &S3Storage{
		client:     s3.NewFromConfig(cfg),
		bucket:     bucket,
		publicPath: publicPath,
		region:     cfg.Region,
	}
}

func (f *S3Storage) Store(ctx context.Context, up usecase.Upload) (string, error) {
	name := uuid.NewString() + filepath.Ext(up.Name)
	key := path.Join(f.publicPath, name)

	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &f.bucket,
		Key:         &key,
		Body:        bytes.NewReader(up.Content),
		ContentType: &up.ContentType,
	})
	if err != nil {
		return "", err
	}
	return "/" + name, nil
}

func (f *S3Storage) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	key := path.Join(f.publicPath, strings.TrimPrefix(ref, "/"))

	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &f.bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

func (f *S3Storage) Delete(ctx context.Context, ref string) error {
	key := path.Join(f.publicPath, strings.TrimPrefix(ref, "/"))

	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &f.bucket,
		Key:    &key,
	})
	return err
}

func (f *S3Storage) GetPublicURL(_ context.Context) (string, error) {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", f.bucket, f.region, f.publicPath), nil
}
