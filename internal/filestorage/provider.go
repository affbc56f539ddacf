package filestorage

import (
	"os"

	"github.com/anaphygon/portfolio/internal/config"
	"github.com/anaphygon/portfolio/internal/usecase"
)

// NewFromEnv selects the asset store backend. Local disk is the
// default; MinIO and S3 cover deployments with an object store.
func NewFromEnv() usecase.FileStorageProvider {
	switch os.Getenv(config.ENV_KEY_FILE_STORAGE_PROVIDER) {
	case "minio":
		return NewMinIOStorage(
			os.Getenv(config.ENV_KEY_MINIO_BUCKET),
			os.Getenv(config.ENV_KEY_MINIO_PUBLIC_PATH),
			os.Getenv(config.ENV_KEY_MINIO_ENDPOINT),
			os.Getenv(config.ENV_KEY_MINIO_ACCESS_KEY),
			os.Getenv(config.ENV_KEY_MINIO_SECRET_KEY),
		)
	case "s3":
		return NewS3Storage(
			os.Getenv(config.ENV_KEY_S3_BUCKET),
			os.Getenv(config.ENV_KEY_S3_PUBLIC_PATH),
		)
	default:
		return NewLocalStorage(
			os.Getenv(config.ENV_KEY_UPLOAD_DIR),
			os.Getenv(config.ENV_KEY_PUBLIC_URL),
		)
	}
}
