package services

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"film-catalog/internal/models"
	"film-catalog/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type mockFilmRepository struct {
	mock.Mock
}

func (m *mockFilmRepository) Create(ctx context.Context, input models.FilmInput, videoPath string, thumbnailPath *string) (*models.Film, error) {
	args := m.Called(ctx, input, videoPath, thumbnailPath)
	film, _ := args.Get(0).(*models.Film)
	return film, args.Error(1)
}

func (m *mockFilmRepository) Update(ctx context.Context, id uint, update models.FilmUpdate) (*models.Film, []string, error) {
	args := m.Called(ctx, id, update)
	film, _ := args.Get(0).(*models.Film)
	stale, _ := args.Get(1).([]string)
	return film, stale, args.Error(2)
}

func (m *mockFilmRepository) Delete(ctx context.Context, id uint) ([]string, error) {
	args := m.Called(ctx, id)
	keys, _ := args.Get(0).([]string)
	return keys, args.Error(1)
}

func (m *mockFilmRepository) FindByID(ctx context.Context, id uint) (*models.Film, error) {
	args := m.Called(ctx, id)
	film, _ := args.Get(0).(*models.Film)
	return film, args.Error(1)
}

func (m *mockFilmRepository) Search(ctx context.Context, search models.FilmSearch) (*models.FilmPage, error) {
	args := m.Called(ctx, search)
	page, _ := args.Get(0).(*models.FilmPage)
	return page, args.Error(1)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, body, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockStore) Remove(ctx context.Context, keys []string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *mockStore) PublicURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

var fixedNow = time.UnixMilli(1700000000000)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestBlobService(t *testing.T, store storage.Store) *BlobService {
	t.Helper()
	blobs := NewBlobService(store, time.Second, testLogger())
	blobs.SetClock(func() time.Time { return fixedNow })
	return blobs
}

func ptr[T any](v T) *T {
	return &v
}

func bytesReader(s string) io.Reader {
	return strings.NewReader(s)
}
