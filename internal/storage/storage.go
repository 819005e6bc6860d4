package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"film-catalog/internal/config"

	"github.com/sirupsen/logrus"
)

var (
	// ErrObjectExists is returned by Upload when the key is already taken.
	// Objects are never overwritten.
	ErrObjectExists = errors.New("object already exists")
	// ErrObjectNotFound is returned when a key has no object behind it.
	ErrObjectNotFound = errors.New("object not found")
)

// Store is a flat key/value blob store.
type Store interface {
	// Upload writes body under key and returns the key the backend stored
	// it as.
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	// Remove deletes every key. A missing object is not an error.
	Remove(ctx context.Context, keys []string) error
	// PublicURL returns the public address of an existing object.
	PublicURL(ctx context.Context, key string) (string, error)
}

// New builds the backend named by cfg.Storage.Driver.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (Store, error) {
	switch cfg.Storage.Driver {
	case "minio":
		return NewMinIOStore(ctx, cfg.MinIO, logger)
	case "s3":
		return NewS3Store(ctx, cfg.S3, logger)
	case "memory":
		logger.Warn("Using in-memory blob storage, uploads are lost on restart")
		return NewMemoryStore("memory://"), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
