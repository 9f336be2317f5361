package services

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/chenjq/photofolio/internal/client/api"
	"github.com/chenjq/photofolio/internal/client/models"
	"github.com/chenjq/photofolio/internal/exifx"
	"github.com/chenjq/photofolio/internal/logging"
	"github.com/chenjq/photofolio/internal/netx"
)

// MaxFileSize is the per-file upload limit.
const MaxFileSize = 10 << 20 // 10 MiB

var ErrFileTooLarge = errors.New("file exceeds 10MB limit")

const defaultContentType = "image/jpeg"

// transferFunc performs the raw byte transfer to the granted target.
// A field rather than a direct call so tests can stub the storage PUT.
type transferFunc func(ctx context.Context, url, contentType string, data []byte) error

// UploadService manages the working set of selected files and drives each
// through the upload sub-protocol: grant → transfer → EXIF → finalize.
// Files in one batch are processed strictly sequentially; a failed file
// marks its own item and never aborts its siblings.
type UploadService struct {
	client   api.Client
	log      logging.Logger
	transfer transferFunc

	mu    sync.Mutex
	items []*models.UploadItem
}

func NewUploadService(client api.Client, log logging.Logger) *UploadService {
	return &UploadService{
		client: client,
		log:    log,
		transfer: func(ctx context.Context, url, contentType string, data []byte) error {
			return netx.UploadToPresignedURL(ctx, http.DefaultClient, url, contentType, data)
		},
	}
}

// Add puts a file into the working set as a pending item. Oversized files
// are rejected here, before any network traffic.
func (s *UploadService) Add(path string) (*models.UploadItem, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if st.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	item := &models.UploadItem{
		LocalID:     uuid.NewString(),
		Path:        path,
		FileName:    filepath.Base(path),
		ContentType: contentTypeFor(path),
		SizeBytes:   st.Size(),
		Status:      models.UploadPending,
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
	return item, nil
}

// Remove drops an item from the working set.
func (s *UploadService) Remove(localID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].LocalID == localID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the working set.
func (s *UploadService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a snapshot of the working set.
func (s *UploadService) Items() []models.UploadItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.UploadItem, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, *it)
	}
	return out
}

// UploadPending uploads every pending item, one full round trip at a time,
// and reports how many succeeded and failed.
func (s *UploadService) UploadPending(ctx context.Context) (uploaded, failed int) {
	s.mu.Lock()
	pending := make([]*models.UploadItem, 0, len(s.items))
	for _, it := range s.items {
		if it.Status == models.UploadPending {
			pending = append(pending, it)
		}
	}
	s.mu.Unlock()

	for _, item := range pending {
		if err := s.uploadOne(ctx, item); err != nil {
			s.log.Error(ctx, "upload failed", "file", item.FileName, "error", err)
			s.setStatus(item, models.UploadError, err)
			failed++
			continue
		}
		s.setStatus(item, models.UploadSuccess, nil)
		uploaded++
	}
	return uploaded, failed
}

func (s *UploadService) uploadOne(ctx context.Context, item *models.UploadItem) error {
	s.setStatus(item, models.UploadUploading, nil)

	grant, err := s.client.RequestUploadGrant(ctx, item.ContentType)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(item.Path)
	if err != nil {
		return err
	}

	if err := s.transfer(ctx, grant.URL, item.ContentType, data); err != nil {
		return err
	}

	// EXIF extraction is best-effort: absence or parse failure means
	// "no metadata, proceed anyway".
	md := exifx.Extract(data)

	return s.client.FinalizeUpload(ctx, models.UploadFinalize{
		ImageID:   grant.ImageID,
		FileName:  item.FileName,
		SizeBytes: int64(len(data)),
		Metadata:  md,
	})
}

func (s *UploadService) setStatus(item *models.UploadItem, status models.UploadStatus, err error) {
	s.mu.Lock()
	item.Status = status
	item.Err = err
	s.mu.Unlock()
}

func contentTypeFor(path string) string {
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" || !strings.HasPrefix(ct, "image/") {
		return defaultContentType
	}
	return ct
}
