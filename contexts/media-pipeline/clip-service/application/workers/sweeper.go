package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/ports"
)

// ArtifactSweeper removes clips older than MaxAge. The original service
// relied entirely on callers invoking cleanup, so an abandoned clip lived
// forever; the sweeper runs as an independent periodic worker task instead
// of being entangled with request handling.
type ArtifactSweeper struct {
	Store  ports.ArtifactStore
	Clock  ports.Clock
	MaxAge time.Duration
	Logger *slog.Logger
}

func (s ArtifactSweeper) RunOnce(ctx context.Context) error {
	maxAge := s.MaxAge
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	cutoff := s.now().Add(-maxAge)

	removed, err := s.Store.SweepOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}
	if removed > 0 && s.Logger != nil {
		s.Logger.Info("expired clips swept",
			"event", "clip_sweep_completed",
			"module", "media-pipeline/clip-service",
			"layer", "application",
			"removed", removed,
			"cutoff", cutoff.Format(time.RFC3339),
		)
	}
	return nil
}

func (s ArtifactSweeper) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
