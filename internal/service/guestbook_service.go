//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"

	"guestbook/internal/model"
	"guestbook/internal/pagination"
	"guestbook/internal/repository"
	"guestbook/pkg/logger"
)

// Page is one listing page.
type Page struct {
	Entries []model.Entry
	Total   int
	Window  pagination.Window
}

type GuestbookService interface {
	List(ctx context.Context, rawPage string, reverse bool) (Page, error)
	Stats(ctx context.Context) (model.Stats, error)
}

// StatusSnapshotter provides the last known website status.
type StatusSnapshotter interface {
	Snapshot() []model.WebsiteStatus
}

type guestbookService struct {
	entries  repository.EntryRepository
	pageSize int
	status   StatusSnapshotter
}

// NewGuestbookService creates the listing service. status may be nil when
// website status is not shown.
func NewGuestbookService(entries repository.EntryRepository, pageSize int, status StatusSnapshotter) GuestbookService {
	if pageSize < 1 {
		pageSize = 10
	}
	return &guestbookService{entries: entries, pageSize: pageSize, status: status}
}

func (s *guestbookService) List(ctx context.Context, rawPage string, reverse bool) (Page, error) {
	total, err := s.entries.Count(ctx)
	if err != nil {
		logger.Error("count entries failed", "module", "service", "action", "list", "resource", "entry", "result", "failed", "error", err)
		return Page{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	window := pagination.New(total, s.pageSize, rawPage, reverse)
	entries, err := s.entries.Page(ctx, window.Offset, window.Limit, window.Order)
	if err != nil {
		logger.Error("list entries failed", "module", "service", "action", "list", "resource", "entry", "result", "failed", "error", err)
		return Page{}, fmt.Errorf("%w: %w", ErrStore, err)
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	return Page{Entries: entries, Total: total, Window: window}, nil
}

func (s *guestbookService) Stats(ctx context.Context) (model.Stats, error) {
	stats, err := s.entries.Stats(ctx)
	if err != nil {
		logger.Error("load stats failed", "module", "service", "action", "stats", "resource", "entry", "result", "failed", "error", err)
		return model.Stats{}, fmt.Errorf("%w: %w", ErrStore, err)
	}
	if s.status != nil {
		stats.Status = s.status.Snapshot()
	}
	return stats, nil
}
