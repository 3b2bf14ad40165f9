// Package bootstrap is the composition root. Construction and wiring live
// here so module code stays framework-agnostic.
package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	clipservice "github.com/clipworks/clipserve/contexts/media-pipeline/clip-service"
	execadapter "github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/adapters/exec"
	fsadapter "github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/adapters/fs"
	"github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/application/workers"
	transcriptservice "github.com/clipworks/clipserve/contexts/media-pipeline/transcript-service"
	"github.com/clipworks/clipserve/contexts/media-pipeline/transcript-service/adapters/youtube"
	"github.com/clipworks/clipserve/internal/platform/config"
	"github.com/clipworks/clipserve/internal/platform/execrunner"
	"github.com/clipworks/clipserve/internal/platform/httpserver"
)

type APIApp struct {
	server *httpserver.Server
	logger *slog.Logger
}

type WorkerApp struct {
	sweeper      workers.ArtifactSweeper
	pollInterval time.Duration
	enabled      bool
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	store, err := fsadapter.NewStore(cfg.ClipDir, logger)
	if err != nil {
		return nil, err
	}

	runner := execrunner.New(logger)
	clips := clipservice.NewModule(clipservice.Dependencies{
		Resolver: execadapter.StreamResolver{
			Runner:  runner,
			Binary:  cfg.YtDlpPath,
			Timeout: cfg.ResolveTimeout,
			Logger:  logger,
		},
		Cutter: execadapter.SegmentCutter{
			Runner:  runner,
			Binary:  cfg.FFmpegPath,
			Timeout: cfg.CutTimeout,
			Logger:  logger,
		},
		Store:         store,
		IDGenerator:   fsadapter.ClipIDGenerator{},
		Clock:         fsadapter.SystemClock{},
		PublicBaseURL: cfg.PublicBaseURL,
		Logger:        logger,
	})

	transcripts := transcriptservice.NewModule(transcriptservice.Dependencies{
		Provider: youtube.Provider{},
		Logger:   logger,
	})

	server := httpserver.New(clips, transcripts, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server: server,
		logger: logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")

	store, err := fsadapter.NewStore(cfg.ClipDir, logger)
	if err != nil {
		return nil, err
	}

	return &WorkerApp{
		sweeper: workers.ArtifactSweeper{
			Store:  store,
			Clock:  fsadapter.SystemClock{},
			MaxAge: cfg.ClipMaxAge,
			Logger: logger,
		},
		pollInterval: cfg.SweepInterval,
		enabled:      cfg.EnableSweeper,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	return a.server.Start()
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if !w.enabled {
		w.logger.Info("artifact sweeper disabled, worker idle",
			"event", "bootstrap_worker_idle",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.sweeper.RunOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
