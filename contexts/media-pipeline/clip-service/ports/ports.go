package ports

import (
	"context"
	"io"
	"time"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// CommandResult carries the captured output of a finished external tool
// invocation. Stderr is kept even on success; ffmpeg writes diagnostics there.
type CommandResult struct {
	Stdout string
	Stderr string
}

// CommandRunner executes an external tool and waits for it to exit.
// Implementations must kill the child process when ctx expires.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (CommandResult, error)
}

// StreamResolver turns an opaque source video reference into a direct,
// time-seekable stream URL. The returned URL is platform-issued and
// short-lived; callers must use it immediately.
type StreamResolver interface {
	Resolve(ctx context.Context, sourceRef string) (string, error)
}

// SegmentCutter produces a single media file at outputPath covering
// start..start+duration of the given stream. The seek point is floored to
// whole seconds; duration keeps sub-second precision.
type SegmentCutter interface {
	Cut(ctx context.Context, streamURL string, start float64, duration float64, outputPath string) error
}

type ArtifactInfo struct {
	FileName string
	Size     int64
	ModTime  time.Time
}

// ArtifactStore owns the flat on-disk directory of produced clips.
// File name validation (bare name, no traversal) is enforced by every
// method that takes a file name, identically for reads and removes.
type ArtifactStore interface {
	FileNameFor(id string) string
	PathFor(fileName string) (string, error)
	Exists(fileName string) (bool, error)
	Open(fileName string) (io.ReadCloser, ArtifactInfo, error)
	Remove(fileName string) error
	SweepOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
