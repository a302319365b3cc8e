package service

import (
	"context"
	"log/slog"
	"time"
)

// CredentialPurger drops a stored credential once it has expired.
// *store.CredentialStore satisfies it.
type CredentialPurger interface {
	PurgeExpired(ctx context.Context) (bool, error)
}

// HousekeepingService periodically removes an expired credential from local
// storage so a stale token does not linger between visits.
type HousekeepingService struct {
	Credentials CredentialPurger
	Logger      *slog.Logger
	Interval    time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. If interval is 0 or
// negative it defaults to 1 hour.
func NewHousekeepingService(credentials CredentialPurger, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &HousekeepingService{
		Credentials: credentials,
		Logger:      logger,
		Interval:    interval,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts the worker down and waits for an in-progress sweep to finish.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) sweep() {
	removed, err := s.Credentials.PurgeExpired(context.Background())
	if err != nil {
		s.Logger.Error("failed to purge expired credential", "error", err)
		return
	}
	if removed {
		s.Logger.Info("removed expired credential")
		return
	}
	s.Logger.Debug("housekeeping sweep found nothing to remove")
}
