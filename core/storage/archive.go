package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
)

// ErrInvalidName is returned for upload names that reduce to nothing usable.
var ErrInvalidName = errors.New("invalid upload name")

// Archive keeps a copy of every uploaded spreadsheet, keyed by its original
// file name. Saving the same name twice overwrites the previous copy.
type Archive interface {
	// Save stores the content of r under name and returns its location.
	Save(ctx context.Context, name string, r io.Reader, size int64) (string, error)
}

// NewArchive creates the archive selected by cfg.Driver.
func NewArchive(cfg Config) (Archive, error) {
	switch cfg.Driver {
	case "", DriverLocal:
		return NewLocalArchive(cfg.LocalDir)
	case DriverS3:
		client, err := NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return NewBucketArchive(client, cfg.Bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// SafeName reduces an uploaded file name to its base name so it can never
// escape the archive root.
func SafeName(name string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == ".." || strings.TrimSpace(base) == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return base, nil
}

// LocalArchive writes uploads into a directory on disk. The directory is
// never cleaned up.
type LocalArchive struct {
	dir string
}

// NewLocalArchive creates dir if needed.
func NewLocalArchive(dir string) (*LocalArchive, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalArchive{dir: dir}, nil
}

// Dir returns the archive directory.
func (a *LocalArchive) Dir() string {
	return a.dir
}

// Save writes r to <dir>/<name>.
func (a *LocalArchive) Save(_ context.Context, name string, r io.Reader, _ int64) (string, error) {
	base, err := SafeName(name)
	if err != nil {
		return "", err
	}

	target := filepath.Join(a.dir, base)
	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", target, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", target, err)
	}
	return target, nil
}

// BucketArchive puts uploads into an S3/MinIO bucket under a key prefix.
type BucketArchive struct {
	client Client
	bucket string
	prefix string
}

// NewBucketArchive creates an archive backed by client.
func NewBucketArchive(client Client, bucket, prefix string) *BucketArchive {
	return &BucketArchive{client: client, bucket: bucket, prefix: prefix}
}

// Ensure creates the bucket when it does not exist yet.
func (a *BucketArchive) Ensure(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	return nil
}

// Save uploads r as <prefix><name>.
func (a *BucketArchive) Save(ctx context.Context, name string, r io.Reader, size int64) (string, error) {
	base, err := SafeName(name)
	if err != nil {
		return "", err
	}

	key := path.Join(a.prefix, base)
	_, err = a.client.PutObject(ctx, a.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType(base),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return a.bucket + "/" + key, nil
}

func contentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".xlsm":
		return "application/vnd.ms-excel.sheet.macroEnabled.12"
	case ".csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
