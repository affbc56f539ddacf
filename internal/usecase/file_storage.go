package usecase

import (
	"context"
	"io"
	"strings"
)

// Upload is one file received from a multipart request, fully read
// into memory. The HTTP surface bounds the request body size before
// an Upload is ever constructed.
type Upload struct {
	Name        string
	ContentType string
	Content     []byte
}

// FileStorageProvider persists uploaded binaries and hands back stable
// references. References round-trip through Open and Delete.
type FileStorageProvider interface {
	// Store writes the upload under a collision-resistant name and
	// returns its reference. Identical content is never deduplicated;
	// each upload gets a fresh name.
	Store(ctx context.Context, up Upload) (string, error)

	// Open returns the stored content for a reference.
	Open(ctx context.Context, ref string) (io.ReadCloser, error)

	// Delete removes a stored binary. Deleting a reference that does
	// not exist is not an error.
	Delete(ctx context.Context, ref string) error

	GetPublicURL(ctx context.Context) (string, error)
}

// isStoreRelative reports whether a reference was produced by the
// asset store, as opposed to an absolute external URL supplied by the
// admin. Only store-relative references are ever deleted.
func isStoreRelative(ref string) bool {
	return ref != "" &&
		!strings.HasPrefix(ref, "http://") &&
		!strings.HasPrefix(ref, "https://")
}
