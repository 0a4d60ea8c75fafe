package service

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/octobees/futsal-booking/api/internal/dto"
	"github.com/octobees/futsal-booking/api/internal/storage"
)

const (
	serviceMediaFolder = "services"
	receiptMediaFolder = "receipts"
)

// Uploader persists submission media and returns public URLs.
type Uploader interface {
	UploadImages(ctx context.Context, owner uuid.UUID, images []dto.Attachment) ([]string, error)
	UploadReceipt(ctx context.Context, owner uuid.UUID, receipt *dto.Attachment) (*string, error)
}

// MediaService stores listing media in the object store. Keys follow
// <folder>/<owner>/<unix-ms>_<index>.<ext>; the timestamp plus index keeps
// keys unique within one submission, which the store's overwrite rejection
// relies on.
type MediaService struct {
	store storage.ObjectStore
	now   func() time.Time
}

// NewMediaService wires a media service backed by the given object store.
func NewMediaService(store storage.ObjectStore) *MediaService {
	return &MediaService{store: store, now: time.Now}
}

// UploadImages stores every image in input order and returns their URLs in
// the same order. The first failure aborts the batch.
func (s *MediaService) UploadImages(ctx context.Context, owner uuid.UUID, images []dto.Attachment) ([]string, error) {
	if len(images) == 0 {
		return nil, nil
	}

	stamp := s.now().UnixMilli()
	urls := make([]string, 0, len(images))
	for i, image := range images {
		key := fmt.Sprintf("%s/%s/%d_%d%s", serviceMediaFolder, owner, stamp, i, fileExt(image.Filename))
		url, err := s.store.Upload(ctx, key, image.Data, attachmentContentType(image))
		if err != nil {
			return nil, UploadError{Message: fmt.Sprintf("upload image %d", i), Err: err}
		}
		urls = append(urls, url)
	}

	return urls, nil
}

// UploadReceipt stores the optional receipt file and returns its URL, or nil
// when no receipt was attached.
func (s *MediaService) UploadReceipt(ctx context.Context, owner uuid.UUID, receipt *dto.Attachment) (*string, error) {
	if receipt == nil {
		return nil, nil
	}

	key := fmt.Sprintf("%s/%s/%d_receipt%s", receiptMediaFolder, owner, s.now().UnixMilli(), fileExt(receipt.Filename))
	url, err := s.store.Upload(ctx, key, receipt.Data, attachmentContentType(*receipt))
	if err != nil {
		return nil, UploadError{Message: "upload receipt", Err: err}
	}

	return &url, nil
}

func fileExt(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		ext = ".jpg"
	}
	return ext
}

func attachmentContentType(att dto.Attachment) string {
	if att.ContentType != "" {
		return att.ContentType
	}
	return http.DetectContentType(att.Data)
}
