package service

import (
	"context"
	"log/slog"
	"time"

	"daily-journal/internal/ingest"
	"daily-journal/internal/model"
)

// ContentIngester produces logged-item content from URLs, files and images.
type ContentIngester interface {
	FromURL(ctx context.Context, rawURL string) (ingest.ParsedContent, error)
	FromFile(ctx context.Context, name string, data []byte, hint model.ItemKind) (ingest.ParsedContent, error)
	FromImage(ctx context.Context, data []byte) (ingest.ParsedContent, error)
}

// CaptureService ingests content and logs it to a day. Ingest failures are
// returned as-is and nothing is stored.
type CaptureService struct {
	ingester ContentIngester
	days     *DayRecordStore
	logger   *slog.Logger
}

func NewCaptureService(ingester ContentIngester, days *DayRecordStore, logger *slog.Logger) *CaptureService {
	return &CaptureService{
		ingester: ingester,
		days:     days,
		logger:   componentLogger(logger, "capture"),
	}
}

func (s *CaptureService) AddURL(ctx context.Context, date time.Time, rawURL string) (*model.LoggedItem, error) {
	content, err := s.ingester.FromURL(ctx, rawURL)
	if err != nil {
		s.logger.Warn("ingest url failed", "url", rawURL, "error", err)
		return nil, err
	}
	return s.days.AddLoggedItem(ctx, date, content)
}

func (s *CaptureService) AddFile(ctx context.Context, date time.Time, name string, data []byte, hint model.ItemKind) (*model.LoggedItem, error) {
	content, err := s.ingester.FromFile(ctx, name, data, hint)
	if err != nil {
		s.logger.Warn("ingest file failed", "file", name, "error", err)
		return nil, err
	}
	return s.days.AddLoggedItem(ctx, date, content)
}

func (s *CaptureService) AddImage(ctx context.Context, date time.Time, data []byte) (*model.LoggedItem, error) {
	content, err := s.ingester.FromImage(ctx, data)
	if err != nil {
		s.logger.Warn("ingest image failed", "bytes", len(data), "error", err)
		return nil, err
	}
	return s.days.AddLoggedItem(ctx, date, content)
}
