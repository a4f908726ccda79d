//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"guestbook/internal/metrics"
	"guestbook/internal/model"
	"guestbook/internal/network"
	"guestbook/internal/repository"
	"guestbook/pkg/logger"
)

// maxConcurrentProbes limits parallel liveness probes during a refresh.
const maxConcurrentProbes = 8

// StatusService keeps the reachability of every stored website.
type StatusService interface {
	RefreshAll(ctx context.Context) error
	Snapshot() []model.WebsiteStatus
}

type statusService struct {
	entries repository.EntryRepository
	prober  LivenessProber
	now     func() time.Time

	mu       sync.RWMutex
	snapshot []model.WebsiteStatus
}

func NewStatusService(entries repository.EntryRepository, prober LivenessProber) StatusService {
	return &statusService{entries: entries, prober: prober, now: time.Now}
}

// RefreshAll probes every distinct stored website and replaces the snapshot.
// A cancelled refresh keeps the previous snapshot.
func (s *statusService) RefreshAll(ctx context.Context) error {
	websites, err := s.entries.Websites(ctx)
	if err != nil {
		logger.Error("status list websites", "module", "service", "action", "list", "resource", "website", "result", "failed", "error", err)
		return fmt.Errorf("%w: %w", ErrStore, err)
	}

	sem := semaphore.NewWeighted(maxConcurrentProbes)
	results := make([]model.WebsiteStatus, len(websites))

	var wg sync.WaitGroup
	for i, website := range websites {
		if err := sem.Acquire(ctx, 1); err != nil {
			logger.Debug("status refresh cancelled", "module", "service", "action", "refresh", "resource", "website", "result", "cancelled", "error", err)
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			host := network.ExtractHost(website)
			alive := host != "" && s.prober.Probe(ctx, host)
			results[i] = model.WebsiteStatus{Website: website, Alive: alive, CheckedAt: s.now().UTC()}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	alive := 0
	for _, r := range results {
		if r.Alive {
			alive++
		}
	}

	s.mu.Lock()
	s.snapshot = results
	s.mu.Unlock()

	metrics.SetWebsitesAlive(alive)
	logger.Info("status refreshed", "module", "service", "action", "refresh", "resource", "website", "result", "ok", "count", len(results), "alive", alive)
	return nil
}

func (s *statusService) Snapshot() []model.WebsiteStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.WebsiteStatus, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}
