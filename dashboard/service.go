package dashboard

import (
	"context"
	"log/slog"
)

// Service is the resilience wrapper over the aggregate path. GetStats is
// success-shaped to callers: a primary failure switches the whole response to
// the fallback generator, never mixing the two sources.
type Service struct {
	repo     Repository
	fallback func() StatsSnapshot
	log      *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:     repo,
		fallback: FallbackSnapshot,
		log:      log,
	}
}

// WithFallback overrides the fallback generator, for tests.
func (s *Service) WithFallback(gen func() StatsSnapshot) *Service {
	s.fallback = gen
	return s
}

// GetStats returns the dashboard snapshot and the source it came from.
// Timeouts and query errors are ordinary primary-path failures here; the
// fallback is total, so callers always get a populated snapshot.
func (s *Service) GetStats(ctx context.Context) (StatsSnapshot, Source) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		s.log.Warn("dashboard primary aggregate failed, serving fallback", "err", err)
		return s.fallback(), SourceFallback
	}
	return snap, SourceLive
}
