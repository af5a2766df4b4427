package s3repo

import (
	"context"
	"fmt"
	"io"
	"path"
	"schoolsite/internal/models"
	"schoolsite/internal/repositories/storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const pkg = "s3Repo/"

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type repository struct {
	client *minio.Client
	bucket string
}

func NewRepository(ctx context.Context, cfg Config) (*repository, error) {
	op := pkg + "NewRepository"

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return &repository{client: client, bucket: cfg.Bucket}, nil
}

func (r *repository) SaveFile(ctx context.Context, dir string, filename string, reader io.Reader) (string, error) {
	op := pkg + "SaveFile"

	name := storage.SanitizeFilename(filename)
	if name == "" {
		return "", fmt.Errorf("%s: %w", op, models.ErrInvalidParams)
	}

	objectName := path.Join(dir, name)

	_, err := r.client.StatObject(ctx, r.bucket, objectName, minio.StatObjectOptions{})
	if err == nil {
		objectName = path.Join(dir, storage.DedupName(name))
	} else if minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	_, err = r.client.PutObject(ctx, r.bucket, objectName, reader, -1, minio.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return objectName, nil
}

func (r *repository) LoadFile(ctx context.Context, p string) (io.ReadCloser, error) {
	op := pkg + "LoadFile"

	obj, err := r.client.GetObject(ctx, r.bucket, p, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// GetObject is lazy, Stat forces the first roundtrip
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%s: %w", op, models.ErrFileNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return obj, nil
}

func (r *repository) DeleteFile(ctx context.Context, p string) error {
	op := pkg + "DeleteFile"

	if _, err := r.client.StatObject(ctx, r.bucket, p, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return fmt.Errorf("%s: %w", op, models.ErrFileNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.client.RemoveObject(ctx, r.bucket, p, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) FileExists(ctx context.Context, p string) (bool, error) {
	op := pkg + "FileExists"

	_, err := r.client.StatObject(ctx, r.bucket, p, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}
