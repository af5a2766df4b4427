package filerepo

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"schoolsite/internal/models"
	"schoolsite/internal/repositories/storage"
	"strings"
)

const pkg = "fileRepo/"

type repository struct {
	basePath string
}

func NewRepository(basePath string) *repository {
	return &repository{basePath: basePath}
}

func (r *repository) SaveFile(ctx context.Context, dir string, filename string, reader io.Reader) (string, error) {
	op := pkg + "SaveFile"

	name := storage.SanitizeFilename(filename)
	if name == "" {
		return "", fmt.Errorf("%s: %w", op, models.ErrInvalidParams)
	}

	absDir, err := r.absPath(dir)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	absPath := filepath.Join(absDir, name)

	if _, err := os.Stat(absPath); err == nil {
		name = storage.DedupName(name)
		absPath = filepath.Join(absDir, name)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(absDir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, reader); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Rename(tmp.Name(), absPath); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return path.Join(dir, name), nil
}

func (r *repository) LoadFile(ctx context.Context, p string) (io.ReadCloser, error) {
	op := pkg + "LoadFile"

	absPath, err := r.absPath(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrFileNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return f, nil
}

func (r *repository) DeleteFile(ctx context.Context, p string) error {
	op := pkg + "DeleteFile"

	absPath, err := r.absPath(p)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Remove(absPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", op, models.ErrFileNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) FileExists(ctx context.Context, p string) (bool, error) {
	op := pkg + "FileExists"

	absPath, err := r.absPath(p)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

func (r *repository) absPath(p string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(p))
	if cleaned == "." || filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", models.ErrInvalidParams
	}

	return filepath.Join(r.basePath, cleaned), nil
}
