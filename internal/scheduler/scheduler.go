// Package scheduler re-probes stored websites on a fixed interval so the
// status published with the stats stays fresh.
package scheduler

import (
	"context"
	"sync"
	"time"

	"guestbook/pkg/logger"
)

// Refresher is the periodic job. service.StatusService satisfies it.
type Refresher interface {
	RefreshAll(ctx context.Context) error
}

type Scheduler struct {
	refresher  Refresher
	interval   time.Duration
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the running refresh
	mu         sync.Mutex         // protects cancelFunc
}

func New(refresher Refresher, interval time.Duration) *Scheduler {
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "interval", s.interval)
}

// Stop cancels a running refresh and waits for the loop to exit. It is safe
// to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.cancelFunc != nil {
			s.cancelFunc()
		}
		close(s.stopCh)
		s.mu.Unlock()

		s.wg.Wait()
		logger.Info("scheduler stopped", "module", "scheduler")
	})
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// first snapshot right away
	s.refresh()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.refresh()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) refresh() {
	// a refresh never outlives its interval
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	select {
	case <-s.stopCh:
		s.mu.Unlock()
		cancel()
		return
	default:
	}
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	start := time.Now()
	if err := s.refresher.RefreshAll(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Info("website status refresh cancelled", "module", "scheduler", "action", "refresh", "result", "cancelled")
			return
		}
		logger.Error("website status refresh", "module", "scheduler", "action", "refresh", "result", "failed", "error", err)
		return
	}
	logger.Debug("website status refresh completed", "module", "scheduler", "action", "refresh", "result", "ok", "duration_ms", time.Since(start).Milliseconds())
}
