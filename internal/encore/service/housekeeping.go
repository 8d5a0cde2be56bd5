package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/encore/internal/encore/metrics"
	"github.com/aussiebroadwan/encore/internal/encore/store"
)

// HousekeepingService periodically clears two-factor enrollments that were
// started but never confirmed within the pending-setup TTL.
type HousekeepingService struct {
	Store      store.Store
	Logger     *slog.Logger
	Metrics    metrics.Recorder
	Interval   time.Duration
	PendingTTL time.Duration
	Now        func() time.Time

	// Internal channels for lifecycle management
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// NewHousekeepingService creates a new housekeeping service. A non-positive
// interval defaults to one hour and a non-positive TTL to
// DefaultPendingSetupTTL.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval, pendingTTL time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	if pendingTTL <= 0 {
		pendingTTL = DefaultPendingSetupTTL
	}

	return &HousekeepingService{
		Store:      store,
		Logger:     logger,
		Interval:   interval,
		PendingTTL: pendingTTL,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// Start begins the background worker. It is non-blocking; call Stop to shut
// it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts the worker down and waits for any in-progress cleanup. Calls
// after the first only wait.
func (s *HousekeepingService) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		<-s.doneCh
		s.Logger.Info("housekeeping service stopped")
	})
	<-s.doneCh
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup runs one pass and returns how many pending setups were cleared.
func (s *HousekeepingService) Cleanup(ctx context.Context) int64 {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	n, err := s.Store.Users().ClearStalePendingSetups(ctx, now.Add(-s.PendingTTL))
	if err != nil {
		s.Logger.Error("failed to clear stale 2fa setups", "error", err)
		return 0
	}
	if s.Metrics != nil {
		s.Metrics.RecordTwoFactorN(metrics.TwoFactorExpired, n)
	}

	s.Logger.Info("housekeeping cleanup completed", "cleared_pending_setups", n)
	return n
}
