package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"quizapi/internal/repository"
	"quizapi/internal/storage"
)

var ErrExportDisabled = errors.New("export storage is not configured")

// ExportResult describes an uploaded snapshot of the question collection.
type ExportResult struct {
	Key       string    `json:"key"`
	Count     int       `json:"count"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ExportService writes snapshots of the question collection to object storage.
type ExportService interface {
	// Export uploads every question as a JSON array and returns a presigned download URL.
	Export(ctx context.Context) (*ExportResult, error)
}

type exportService struct {
	store  storage.Storage
	repo   repository.QuestionRepository
	expiry time.Duration
	now    func() time.Time
}

// NewExportService constructs an ExportService. A nil store yields a service
// whose Export always fails with ErrExportDisabled.
func NewExportService(store storage.Storage, repo repository.QuestionRepository, expiry time.Duration) ExportService {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &exportService{store: store, repo: repo, expiry: expiry, now: time.Now}
}

func (s *exportService) Export(ctx context.Context) (*ExportResult, error) {
	if s.store == nil {
		return nil, ErrExportDisabled
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	now := s.now().UTC()
	key := fmt.Sprintf("exports/questions-%s-%s.json", now.Format("20060102T150405Z"), uuid.NewString())
	info, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"question-count": fmt.Sprint(len(items)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}

	u, err := s.store.PresignGet(ctx, info.Key, s.expiry)
	if err != nil {
		// Rollback the orphaned upload
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign failed: %w", err)
	}

	return &ExportResult{
		Key:       info.Key,
		Count:     len(items),
		URL:       u,
		ExpiresAt: now.Add(s.expiry),
	}, nil
}
