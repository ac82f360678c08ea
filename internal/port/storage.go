package port

import (
	"context"
	"io"
)

// UploadInput encapsulates the parameters needed to store an object.
type UploadInput struct {
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput contains the result of a successful upload.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage abstracts where uploaded documents are kept.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Download(ctx context.Context, key string) ([]byte, error)
	// LocalPath returns a filesystem path holding the object's bytes. The
	// release func must be called once the caller is done with the path.
	LocalPath(ctx context.Context, key string) (path string, release func(), err error)
	Delete(ctx context.Context, key string) error
}
