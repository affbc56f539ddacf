package filestorage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/anaphygon/portfolio/internal/usecase"
)

// LocalStorage persists uploads on the local filesystem and serves
// them back through the /uploads static route.
type LocalStorage struct {
	dir       string
	publicURL string
}

func NewLocalStorage(dir, publicURL string) *LocalStorage {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		panic("filestorage: failed to create upload dir: " + err.Error())
	}
	return &LocalStorage{
		dir:       dir,
		publicURL: publicURL,
	}
}

func (l *LocalStorage) Store(_ context.Context, up usecase.Upload) (string, error) {
	// A fresh uuid per upload; identical content is never deduplicated.
	name := uuid.NewString() + filepath.Ext(up.Name)

	if err := os.WriteFile(filepath.Join(l.dir, name), up.Content, 0o644); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

func (l *LocalStorage) Open(_ context.Context, ref string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(l.dir, refToName(ref)))
}

func (l *LocalStorage) Delete(_ context.Context, ref string) error {
	err := os.Remove(filepath.Join(l.dir, refToName(ref)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (l *LocalStorage) GetPublicURL(_ context.Context) (string, error) {
	return l.publicURL, nil
}

// refToName maps a stored reference back to its on-disk name. Base
// strips any path components so a reference can never escape the
// upload dir.
func refToName(ref string) string {
	return filepath.Base(strings.TrimPrefix(ref, "/uploads/"))
}
