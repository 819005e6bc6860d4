package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"film-catalog/internal/apperror"
	"film-catalog/internal/metrics"
	"film-catalog/internal/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"
)

type BlobKind string

const (
	BlobVideo     BlobKind = "video"
	BlobThumbnail BlobKind = "thumbnail"
)

const defaultContentType = "application/octet-stream"

// Upload is a file received from a client. The payload is either held in
// Data or staged on local disk at StagingPath.
type Upload struct {
	OriginalName string
	ContentType  string
	Data         []byte
	StagingPath  string
}

func (u *Upload) empty() bool {
	return u == nil || (len(u.Data) == 0 && u.StagingPath == "")
}

// BlobKey derives the storage key for an upload: <kind>/<unix millis>_<base name>.
func BlobKey(kind BlobKind, originalName string, at time.Time) (string, error) {
	base := path.Base(strings.ReplaceAll(originalName, `\`, "/"))
	if base == "." || base == "/" || strings.TrimSpace(base) == "" {
		return "", apperror.InvalidArgument("%s file name is required", kind)
	}
	return fmt.Sprintf("%s/%d_%s", kind, at.UnixMilli(), base), nil
}

// BlobService moves uploads into the blob store and cleans up after them.
type BlobService struct {
	store   storage.Store
	timeout time.Duration
	now     func() time.Time
	logger  *logrus.Logger
}

func NewBlobService(store storage.Store, timeout time.Duration, logger *logrus.Logger) *BlobService {
	return &BlobService{
		store:   store,
		timeout: timeout,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *BlobService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *BlobService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Store uploads a file under a fresh key and returns the key the backend
// stored it as. An existing key is a conflict, never an overwrite. The
// staging file is removed once the blob is stored.
func (s *BlobService) Store(ctx context.Context, kind BlobKind, upload Upload) (string, error) {
	if upload.empty() {
		return "", apperror.InvalidArgument("%s file is empty", kind)
	}
	key, err := BlobKey(kind, upload.OriginalName, s.now())
	if err != nil {
		return "", err
	}

	body, size, closeBody, err := open(upload)
	if err != nil {
		return "", apperror.Internal(err, fmt.Sprintf("read %s upload", kind))
	}
	defer closeBody()

	contentType, err := s.contentType(upload)
	if err != nil {
		return "", apperror.Internal(err, fmt.Sprintf("read %s upload", kind))
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	stored, err := s.store.Upload(ctx, key, body, size, contentType)
	if err != nil {
		metrics.RecordBlobOperation("upload", metrics.StatusError, time.Since(start).Seconds())
		if errors.Is(err, storage.ErrObjectExists) {
			return "", apperror.Conflict("%s object %q already exists", kind, key)
		}
		s.logger.WithError(err).WithField("key", key).Error("Failed to upload blob")
		return "", apperror.Internal(err, fmt.Sprintf("store %s", kind))
	}
	metrics.RecordBlobOperation("upload", metrics.StatusSuccess, time.Since(start).Seconds())
	metrics.RecordUpload(string(kind), size)

	s.logger.WithFields(logrus.Fields{
		"key":         stored,
		"size":        size,
		"contentType": contentType,
	}).Info("Blob stored")

	if upload.StagingPath != "" {
		closeBody()
		s.removeStaging(upload.StagingPath)
	}
	return stored, nil
}

// contentType keeps the client's type unless it is missing or generic, in
// which case the payload is sniffed.
func (s *BlobService) contentType(upload Upload) (string, error) {
	declared := strings.TrimSpace(upload.ContentType)
	if declared != "" && declared != defaultContentType {
		return declared, nil
	}
	if upload.StagingPath != "" {
		mtype, err := mimetype.DetectFile(upload.StagingPath)
		if err != nil {
			return "", err
		}
		return mtype.String(), nil
	}
	return mimetype.Detect(upload.Data).String(), nil
}

func open(upload Upload) (io.Reader, int64, func(), error) {
	if upload.StagingPath == "" {
		return bytes.NewReader(upload.Data), int64(len(upload.Data)), func() {}, nil
	}

	file, err := os.Open(upload.StagingPath)
	if err != nil {
		return nil, 0, nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, 0, nil, err
	}

	closed := false
	closeFile := func() {
		if !closed {
			closed = true
			_ = file.Close()
		}
	}
	return file, info.Size(), closeFile, nil
}

// Remove deletes blobs best-effort. Failures are logged and counted, never
// returned: the caller's change has already been committed.
func (s *BlobService) Remove(ctx context.Context, keys ...string) {
	targets := make([]string, 0, len(keys))
	for _, key := range keys {
		if key != "" {
			targets = append(targets, key)
		}
	}
	if len(targets) == 0 {
		return
	}

	ctx, cancel := s.withTimeout(context.WithoutCancel(ctx))
	defer cancel()

	start := time.Now()
	if err := s.store.Remove(ctx, targets); err != nil {
		metrics.RecordBlobOperation("remove", metrics.StatusError, time.Since(start).Seconds())
		metrics.RecordOrphans(len(targets))
		s.logger.WithError(err).WithField("keys", targets).Warn("Failed to remove blobs")
		return
	}
	metrics.RecordBlobOperation("remove", metrics.StatusSuccess, time.Since(start).Seconds())
	s.logger.WithField("keys", targets).Info("Blobs removed")
}

func (s *BlobService) PublicURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", apperror.NotFound("object not found")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	url, err := s.store.PublicURL(ctx, key)
	if err != nil {
		metrics.RecordBlobOperation("url", metrics.StatusError, time.Since(start).Seconds())
		if errors.Is(err, storage.ErrObjectNotFound) {
			return "", apperror.NotFound("object %q not found", key)
		}
		return "", apperror.Internal(err, "resolve object url")
	}
	metrics.RecordBlobOperation("url", metrics.StatusSuccess, time.Since(start).Seconds())
	return url, nil
}

// Discard removes the staging files of uploads that will not be stored.
func (s *BlobService) Discard(uploads ...*Upload) {
	for _, upload := range uploads {
		if upload != nil && upload.StagingPath != "" {
			s.removeStaging(upload.StagingPath)
		}
	}
}

func (s *BlobService) removeStaging(stagingPath string) {
	if err := os.Remove(stagingPath); err != nil && !os.IsNotExist(err) {
		s.logger.WithError(err).WithField("path", stagingPath).Warn("Failed to remove staging file")
	}
}
