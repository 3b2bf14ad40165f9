package execadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainerrors "github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/domain/errors"
	"github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/ports"
)

// formatPolicy prefers a single muxed mp4 stream and falls back to the best
// separate video+audio candidates when no muxed container is offered.
const formatPolicy = "best[ext=mp4]/bestvideo[ext=mp4]+bestaudio/best"

const defaultResolveTimeout = 60 * time.Second

// StreamResolver resolves a source video reference to a direct stream URL
// through yt-dlp. The URL is platform-issued and expires on its own; the
// resolver does not retry.
type StreamResolver struct {
	Runner  ports.CommandRunner
	Binary  string
	Timeout time.Duration
	Logger  *slog.Logger
}

func (r StreamResolver) Resolve(ctx context.Context, sourceRef string) (string, error) {
	sourceRef = strings.TrimSpace(sourceRef)
	if sourceRef == "" {
		return "", fmt.Errorf("source reference is required: %w", domainerrors.ErrInvalidRequest)
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultResolveTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	binary := r.Binary
	if binary == "" {
		binary = "yt-dlp"
	}

	result, err := r.Runner.Run(ctx, binary,
		sourceRef,
		"-f", formatPolicy,
		"--get-url",
		"--no-warnings",
	)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("yt-dlp exceeded %s: %w", timeout, domainerrors.ErrTimeout)
		}
		return "", fmt.Errorf("%s: %w", toolDetail(err, result.Stderr), domainerrors.ErrResolutionFailed)
	}

	// yt-dlp can emit one URL per elementary stream; the first line is the
	// preferred candidate under the format policy.
	streamURL := firstLine(result.Stdout)
	if streamURL == "" {
		return "", fmt.Errorf("yt-dlp produced no stream url: %w", domainerrors.ErrResolutionFailed)
	}

	if r.Logger != nil {
		r.Logger.Debug("stream resolved",
			"event", "stream_resolved",
			"module", "media-pipeline/clip-service",
			"layer", "adapter",
			"source_ref", sourceRef,
		)
	}
	return streamURL, nil
}

func firstLine(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

func toolDetail(err error, stderr string) string {
	detail := strings.TrimSpace(stderr)
	if detail == "" {
		return err.Error()
	}
	// Keep the tail; the actionable line of a tool diagnostic is usually last.
	lines := strings.Split(detail, "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
