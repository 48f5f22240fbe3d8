package sweeper

//go:generate mockgen -source=sweeper.go -destination=mock_sweeper.go -package=sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Sessions interface {
	Sweep(ctx context.Context) (int, error)
}

// Service periodically reclaims idle sessions. Expiry is enforced on access,
// so a missed tick only delays freeing memory.
type Service struct {
	sessions Sessions
	interval time.Duration
}

func New(sessions Sessions, interval time.Duration) *Service {
	return &Service{
		sessions: sessions,
		interval: interval,
	}
}

// Start runs the sweep loop until ctx is cancelled. done is closed on exit.
func (s *Service) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	zap.L().Info("session sweeper started", zap.Duration("interval", s.interval))
	go func() {
		defer close(done)
		s.run(ctx)
	}()
	return done
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping session sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	removed, err := s.sessions.Sweep(ctx)
	if err != nil {
		zap.L().Error("failed to sweep sessions", zap.Error(err))
		return
	}
	if removed > 0 {
		zap.L().Debug("expired sessions removed", zap.Int("count", removed))
	}
}
