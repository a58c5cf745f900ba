package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	apperrors "leagueportal/internal/errors"
	"leagueportal/internal/logger"
	"leagueportal/internal/metrics"
	"leagueportal/internal/storage"
)

// MaxImageSize is the largest accepted player photo.
const MaxImageSize = 5 << 20

const (
	uploadMaxAttempts     = 3
	uploadInitialInterval = time.Second
)

// ObjectStore is the blob store used for player photos.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	PresignPut(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// ImageUpload is a file received from a multipart form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadSeeker
}

// UploadTicket lets a browser PUT an image directly to the store.
type UploadTicket struct {
	UploadURL string    `json:"uploadUrl"`
	Key       string    `json:"key"`
	PublicURL string    `json:"publicUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UploadService stores player photos.
type UploadService interface {
	UploadImage(ctx context.Context, img *ImageUpload) (string, error)
	PresignImage(ctx context.Context, filename string) (*UploadTicket, error)
}

// UploadSettings configures object keys and the retry policy.
type UploadSettings struct {
	Folder          string
	PublicURL       string
	PresignTTL      time.Duration
	InitialInterval time.Duration
}

type uploadService struct {
	store    ObjectStore
	settings UploadSettings
	log      *slog.Logger
	now      func() time.Time
}

// NewUploadService creates an upload service. A nil store disables uploads.
func NewUploadService(store ObjectStore, settings UploadSettings, log *slog.Logger) UploadService {
	if settings.InitialInterval <= 0 {
		settings.InitialInterval = uploadInitialInterval
	}
	if settings.PresignTTL <= 0 {
		settings.PresignTTL = 15 * time.Minute
	}
	return &uploadService{
		store:    store,
		settings: settings,
		log:      log,
		now:      time.Now,
	}
}

// UploadImage validates img and stores it, retrying transient store errors
// with exponential backoff.
func (s *uploadService) UploadImage(ctx context.Context, img *ImageUpload) (string, error) {
	const op = "service.uploadService.UploadImage"
	log := s.log.With(slog.String("op", op))

	if s.store == nil {
		return "", apperrors.ErrUploadNotEnabled
	}
	if img == nil || img.Body == nil {
		return "", apperrors.ErrImageRequired
	}
	if !strings.HasPrefix(img.ContentType, "image/") {
		return "", apperrors.ErrImageType
	}
	if img.Size > MaxImageSize {
		return "", apperrors.ErrImageTooLarge
	}

	key := s.objectKey(img.Filename, img.ContentType)

	var url string
	attempt := 0
	put := func() error {
		attempt++
		if _, err := img.Body.Seek(0, io.SeekStart); err != nil {
			return backoff.Permanent(err)
		}
		u, err := s.store.Put(ctx, key, img.Body, img.Size, img.ContentType)
		if err != nil {
			if storage.IsTransient(err) {
				metrics.UploadAttempts.WithLabelValues("retry").Inc()
				log.Warn("transient upload error", slog.Int("attempt", attempt), logger.Err(err))
				return err
			}
			return backoff.Permanent(err)
		}
		url = u
		return nil
	}

	if err := backoff.Retry(put, s.retryPolicy(ctx)); err != nil {
		metrics.UploadAttempts.WithLabelValues("failed").Inc()
		log.Error("upload failed", slog.String("key", key), slog.Int("attempts", attempt), logger.Err(err))
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}

	metrics.UploadAttempts.WithLabelValues("success").Inc()
	log.Info("image uploaded", slog.String("key", key))
	return url, nil
}

// PresignImage returns a short-lived direct upload URL for a new object.
func (s *uploadService) PresignImage(ctx context.Context, filename string) (*UploadTicket, error) {
	if s.store == nil {
		return nil, apperrors.ErrUploadNotEnabled
	}

	key := s.objectKey(filename, "")
	uploadURL, err := s.store.PresignPut(ctx, key, s.settings.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}
	return &UploadTicket{
		UploadURL: uploadURL,
		Key:       key,
		PublicURL: storage.ObjectURL(s.settings.PublicURL, key),
		ExpiresAt: s.now().Add(s.settings.PresignTTL),
	}, nil
}

func (s *uploadService) retryPolicy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.settings.InitialInterval
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uploadMaxAttempts-1), ctx)
}

func (s *uploadService) objectKey(filename, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" && contentType != "" {
		if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}
	return path.Join(s.settings.Folder, uuid.NewString()+ext)
}
