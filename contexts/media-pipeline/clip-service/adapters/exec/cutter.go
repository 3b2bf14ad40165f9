package execadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"time"

	domainerrors "github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/domain/errors"
	"github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/ports"
)

const defaultCutTimeout = 5 * time.Minute

// SegmentCutter cuts a time window out of a remote stream through ffmpeg.
// The seek point goes before -i so ffmpeg seeks approximately on the remote
// stream instead of reading it from the start; the actual clip may begin up
// to a second before the requested offset. Video is stream-copied, audio is
// re-encoded to AAC so consumers that reject the source codec still play it.
type SegmentCutter struct {
	Runner  ports.CommandRunner
	Binary  string
	Timeout time.Duration
	Logger  *slog.Logger
}

func (c SegmentCutter) Cut(ctx context.Context, streamURL string, start float64, duration float64, outputPath string) error {
	if streamURL == "" || outputPath == "" {
		return fmt.Errorf("stream url and output path are required: %w", domainerrors.ErrInvalidRequest)
	}
	if start < 0 || duration <= 0 {
		return fmt.Errorf("start must be non-negative and duration positive: %w", domainerrors.ErrInvalidRequest)
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultCutTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	binary := c.Binary
	if binary == "" {
		binary = "ffmpeg"
	}

	seek := strconv.Itoa(int(math.Floor(start)))
	result, err := c.Runner.Run(ctx, binary,
		"-hide_banner",
		"-nostdin",
		"-loglevel", "error",
		"-ss", seek,
		"-i", streamURL,
		"-t", strconv.FormatFloat(duration, 'f', 3, 64),
		"-c:v", "copy",
		"-c:a", "aac",
		"-b:a", "128k",
		outputPath,
	)
	if err != nil {
		// ffmpeg may have partially written the output before failing;
		// anything left behind is untrusted and must not be served.
		removePartialOutput(outputPath, c.Logger)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("ffmpeg exceeded %s: %w", timeout, domainerrors.ErrTimeout)
		}
		return fmt.Errorf("%s: %w", toolDetail(err, result.Stderr), domainerrors.ErrCutFailed)
	}

	if c.Logger != nil {
		c.Logger.Debug("segment cut complete",
			"event", "segment_cut_complete",
			"module", "media-pipeline/clip-service",
			"layer", "adapter",
			"output_path", outputPath,
			"seek", seek,
			"duration", duration,
		)
	}
	return nil
}

func removePartialOutput(outputPath string, logger *slog.Logger) {
	err := os.Remove(outputPath)
	if err == nil || os.IsNotExist(err) {
		return
	}
	if logger != nil {
		logger.Warn("could not remove partial cut output",
			"event", "segment_cut_partial_left_behind",
			"module", "media-pipeline/clip-service",
			"layer", "adapter",
			"output_path", outputPath,
			"error", err.Error(),
		)
	}
}
