package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"ocreader/internal/logger"
	"ocreader/internal/service"
)

// Scheduler runs a sync right away and then on every tick.
type Scheduler struct {
	syncService service.SyncService
	interval    time.Duration
	stopCh      chan struct{}
	wg          sync.WaitGroup
	cancelFunc  context.CancelFunc // cancels the running sync
	mu          sync.Mutex         // protects cancelFunc
}

func New(syncService service.SyncService, interval time.Duration) *Scheduler {
	return &Scheduler{
		syncService: syncService,
		interval:    interval,
		stopCh:      make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "sync", "resource", "account", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

// Stop cancels a running sync and waits for the loop to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "sync", "resource", "account", "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	s.sync()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sync()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) sync() {
	// A sync never outlives the interval.
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	_, err := s.syncService.Sync(ctx)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrNotLoggedIn):
		logger.Debug("scheduled sync skipped", "module", "scheduler", "action", "sync", "resource", "account", "result", "skipped", "reason", "not logged in")
	case errors.Is(err, service.ErrAlreadySyncing):
		logger.Debug("scheduled sync skipped", "module", "scheduler", "action", "sync", "resource", "account", "result", "skipped", "reason", "already syncing")
	case ctx.Err() != nil:
		logger.Warn("scheduled sync cancelled", "module", "scheduler", "action", "sync", "resource", "account", "result", "cancelled")
	default:
		logger.Error("scheduled sync failed", "module", "scheduler", "action", "sync", "resource", "account", "result", "failed", "error", err)
	}
}
