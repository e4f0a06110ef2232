// Package fileservice validates incoming files and stores them in an object
// store, keeping an audit trail of every accepted upload.
//
// Validation is deterministic and runs entirely before the first network
// call: empty file, then size ceiling, then extension allow-list. Content
// sniffing happens after acceptance and only annotates the stored object,
// it never rejects one.
package fileservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	ErrEmptyFile           = errors.New("file is empty")
	ErrFileTooLarge        = errors.New("file exceeds the size ceiling")
	ErrExtensionNotAllowed = errors.New("file extension is not allowed")
	ErrBadFolder           = errors.New("invalid folder name")
	ErrMissingKey          = errors.New("missing object key")
)

// folderPattern keeps target folders flat: no separators, no traversal.
var folderPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,64}$`)

const (
	defaultFolder      = "uploads"
	defaultRecentLimit = 10
	maxRecentLimit     = 100
)

// Upload is the audit record of one stored object.
type Upload struct {
	Key         string    `json:"key"`
	Bucket      string    `json:"bucket"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	Folder      string    `json:"folder"`
	StoredAt    time.Time `json:"stored_at"`
}

type Service struct {
	log        *slog.Logger
	cfg        Config
	storage    ObjectStorage
	repository IUploadRepository
}

func NewService(log *slog.Logger, cfg Config, storage ObjectStorage, repository IUploadRepository) Service {
	return Service{log: log, cfg: cfg, storage: storage, repository: repository}
}

// Upload stores one file under the default folder.
func (s Service) Upload(ctx context.Context, filename string, size int64, body io.Reader) (Upload, error) {
	return s.store(ctx, defaultFolder, filename, size, body)
}

// UploadTo stores one file under the given folder.
func (s Service) UploadTo(ctx context.Context, folder, filename string, size int64, body io.Reader) (Upload, error) {
	if !folderPattern.MatchString(folder) {
		return Upload{}, fmt.Errorf("%w: %q", ErrBadFolder, folder)
	}
	return s.store(ctx, folder, filename, size, body)
}

func (s Service) store(ctx context.Context, folder, filename string, size int64, body io.Reader) (Upload, error) {
	if size == 0 {
		return Upload{}, ErrEmptyFile
	}
	if size > s.cfg.MaxFileSizeBytes {
		return Upload{}, fmt.Errorf("%w: %d bytes (ceiling %d)", ErrFileTooLarge, size, s.cfg.MaxFileSizeBytes)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !lo.Contains(s.cfg.AllowedExtensions, ext) {
		return Upload{}, fmt.Errorf("%w: %q", ErrExtensionNotAllowed, ext)
	}

	contentType, body, err := Sniff(body)
	if err != nil {
		return Upload{}, fmt.Errorf("sniffing %s: %w", filename, err)
	}

	key := fmt.Sprintf("%s/%s%s", folder, uuid.New(), ext)
	if err := s.storage.Put(ctx, key, contentType, body, size); err != nil {
		return Upload{}, err
	}

	upload := Upload{
		Key:         key,
		Bucket:      s.cfg.Bucket,
		Size:        size,
		ContentType: contentType,
		Folder:      folder,
		StoredAt:    time.Now().UTC(),
	}
	if err := s.repository.Record(upload); err != nil {
		return Upload{}, fmt.Errorf("recording upload %s: %w", key, err)
	}
	s.log.Info("File stored", "key", key, "size", size, "content_type", contentType)
	return upload, nil
}

// Delete removes one object from storage. The audit trail keeps its entry:
// it is a log of what happened, not an inventory of what exists.
func (s Service) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrMissingKey
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		return err
	}
	s.log.Info("File deleted", "key", key)
	return nil
}

// Recent lists the latest audit entries, newest first. A non-positive limit
// falls back to the default, oversized ones are capped.
func (s Service) Recent(limit int) ([]Upload, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return s.repository.Recent(limit)
}
