package ports

import (
	"context"
	"io"
)

// FileStorage issues pre-authorized, time-limited links into object storage.
// The backend never proxies file bytes itself.
type FileStorage interface {
	// PresignUpload returns a PUT URL for the given object key.
	PresignUpload(ctx context.Context, key, contentType string) (string, error)

	// PresignDownload returns a GET URL for the given object key.
	PresignDownload(ctx context.Context, key string) (string, error)
}

// AIFile is the remote file record returned by the AI file API.
type AIFile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SizeBytes int64  `json:"sizeBytes"`
	Status    string `json:"status"`
}

// AIFileClient proxies uploads to the third-party AI file API used for
// question generation.
type AIFileClient interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (*AIFile, error)
	Get(ctx context.Context, fileID string) (*AIFile, error)
	Delete(ctx context.Context, fileID string) error
}
