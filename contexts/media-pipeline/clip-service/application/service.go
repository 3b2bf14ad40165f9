package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	domainerrors "github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/domain/errors"
	"github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/ports"
)

// Service orchestrates the clip lifecycle: resolve the source to a stream,
// cut the requested window into the artifact store, then serve and clean up
// as independent operations against the stored file.
type Service struct {
	Resolver ports.StreamResolver
	Cutter   ports.SegmentCutter
	Store    ports.ArtifactStore
	IDGen    ports.IDGenerator
	Clock    ports.Clock
	Logger   *slog.Logger
}

type CreateClipInput struct {
	SourceRef string
	Start     float64
	End       float64
}

type ClipArtifact struct {
	FileName  string
	Path      string
	CreatedAt time.Time
}

type CleanupOutcome string

const (
	CleanupRemoved  CleanupOutcome = "removed"
	CleanupNotFound CleanupOutcome = "not_found"
)

func (s Service) CreateClip(ctx context.Context, input CreateClipInput) (ClipArtifact, error) {
	if err := validateCreateClip(input); err != nil {
		return ClipArtifact{}, err
	}
	duration := input.End - input.Start

	streamURL, err := s.Resolver.Resolve(ctx, input.SourceRef)
	if err != nil {
		resolveLogger(s.Logger).Warn("stream resolution failed",
			"event", "clip_resolve_failed",
			"module", "media-pipeline/clip-service",
			"layer", "application",
			"source_ref", input.SourceRef,
			"error", err.Error(),
		)
		return ClipArtifact{}, err
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ClipArtifact{}, fmt.Errorf("generate clip id: %w", err)
	}
	fileName := s.Store.FileNameFor(id)
	outputPath, err := s.Store.PathFor(fileName)
	if err != nil {
		return ClipArtifact{}, err
	}
	if exists, err := s.Store.Exists(fileName); err != nil {
		return ClipArtifact{}, err
	} else if exists {
		return ClipArtifact{}, fmt.Errorf("clip id collision on %s: %w", fileName, domainerrors.ErrCutFailed)
	}

	if err := s.Cutter.Cut(ctx, streamURL, input.Start, duration, outputPath); err != nil {
		resolveLogger(s.Logger).Warn("segment cut failed",
			"event", "clip_cut_failed",
			"module", "media-pipeline/clip-service",
			"layer", "application",
			"file_name", fileName,
			"error", err.Error(),
		)
		return ClipArtifact{}, err
	}

	// Never report success for a file the store cannot see.
	exists, err := s.Store.Exists(fileName)
	if err != nil {
		return ClipArtifact{}, err
	}
	if !exists {
		return ClipArtifact{}, fmt.Errorf("cutter reported success but %s is missing: %w", fileName, domainerrors.ErrCutFailed)
	}

	createdAt := s.now()
	resolveLogger(s.Logger).Info("clip created",
		"event", "clip_created",
		"module", "media-pipeline/clip-service",
		"layer", "application",
		"file_name", fileName,
		"start", input.Start,
		"duration", duration,
	)
	return ClipArtifact{
		FileName:  fileName,
		Path:      outputPath,
		CreatedAt: createdAt,
	}, nil
}

// ServeClip returns the stored clip content. Repeatable and non-destructive;
// a delete racing a concurrent serve may surface as ErrNotFound or a short
// read, which the design accepts for single-consumer clips.
func (s Service) ServeClip(_ context.Context, fileName string) (io.ReadCloser, ports.ArtifactInfo, error) {
	return s.Store.Open(fileName)
}

// CleanupClip removes the clip. The second cleanup of the same file reports
// CleanupNotFound rather than an error so callers can distinguish "already
// cleaned up" from "delete failed".
func (s Service) CleanupClip(_ context.Context, fileName string) (CleanupOutcome, error) {
	err := s.Store.Remove(fileName)
	switch {
	case err == nil:
		resolveLogger(s.Logger).Info("clip removed",
			"event", "clip_removed",
			"module", "media-pipeline/clip-service",
			"layer", "application",
			"file_name", fileName,
		)
		return CleanupRemoved, nil
	case isNotFound(err):
		return CleanupNotFound, nil
	default:
		return "", err
	}
}

func validateCreateClip(input CreateClipInput) error {
	if strings.TrimSpace(input.SourceRef) == "" {
		return fmt.Errorf("source reference is required: %w", domainerrors.ErrInvalidRequest)
	}
	if math.IsNaN(input.Start) || math.IsInf(input.Start, 0) ||
		math.IsNaN(input.End) || math.IsInf(input.End, 0) {
		return fmt.Errorf("start and end must be finite: %w", domainerrors.ErrInvalidRequest)
	}
	if input.Start < 0 {
		return fmt.Errorf("start must be non-negative: %w", domainerrors.ErrInvalidRequest)
	}
	if input.End-input.Start <= 0 {
		return fmt.Errorf("end must be greater than start: %w", domainerrors.ErrInvalidRequest)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domainerrors.ErrNotFound)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
