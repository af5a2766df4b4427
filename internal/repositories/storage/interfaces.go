package storage

import (
	"context"
	"io"
)

type FileRepository interface {
	SaveFile(ctx context.Context, dir string, filename string, reader io.Reader) (string, error)
	LoadFile(ctx context.Context, path string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, path string) error
	FileExists(ctx context.Context, path string) (bool, error)
}
