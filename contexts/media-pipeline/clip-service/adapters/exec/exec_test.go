package execadapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	domainerrors "github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/domain/errors"
	"github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/ports"
)

type fakeRunner struct {
	result ports.CommandResult
	err    error
	block  bool

	name string
	args []string
	run  func(args []string)
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) (ports.CommandResult, error) {
	r.name = name
	r.args = args
	if r.run != nil {
		r.run(args)
	}
	if r.block {
		<-ctx.Done()
		return ports.CommandResult{}, ctx.Err()
	}
	return r.result, r.err
}

func argIndex(args []string, value string) int {
	for i, arg := range args {
		if arg == value {
			return i
		}
	}
	return -1
}

func TestResolveSelectsFirstStreamURL(t *testing.T) {
	runner := &fakeRunner{result: ports.CommandResult{
		Stdout: "https://cdn.example/video\nhttps://cdn.example/audio\n",
	}}
	resolver := StreamResolver{Runner: runner}

	url, err := resolver.Resolve(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if url != "https://cdn.example/video" {
		t.Fatalf("expected first candidate, got %q", url)
	}
	if runner.name != "yt-dlp" {
		t.Fatalf("expected default yt-dlp binary, got %q", runner.name)
	}
	if argIndex(runner.args, "--get-url") < 0 || argIndex(runner.args, "--no-warnings") < 0 {
		t.Fatalf("missing expected flags in %v", runner.args)
	}
}

func TestResolveToolFailureIsResolutionFailed(t *testing.T) {
	runner := &fakeRunner{
		result: ports.CommandResult{Stderr: "ERROR: Video unavailable"},
		err:    errors.New("yt-dlp exited with code 1"),
	}
	resolver := StreamResolver{Runner: runner}

	_, err := resolver.Resolve(context.Background(), "video-X")
	if !errors.Is(err, domainerrors.ErrResolutionFailed) {
		t.Fatalf("expected ErrResolutionFailed, got %v", err)
	}
}

func TestResolveEmptyOutputIsResolutionFailed(t *testing.T) {
	resolver := StreamResolver{Runner: &fakeRunner{result: ports.CommandResult{Stdout: "\n  \n"}}}
	if _, err := resolver.Resolve(context.Background(), "video-X"); !errors.Is(err, domainerrors.ErrResolutionFailed) {
		t.Fatalf("expected ErrResolutionFailed, got %v", err)
	}
}

func TestResolveTimeoutIsDistinct(t *testing.T) {
	resolver := StreamResolver{Runner: &fakeRunner{block: true}, Timeout: 20 * time.Millisecond}
	_, err := resolver.Resolve(context.Background(), "video-X")
	if !errors.Is(err, domainerrors.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if errors.Is(err, domainerrors.ErrResolutionFailed) {
		t.Fatalf("timeout must not be reported as resolution failure: %v", err)
	}
}

func TestCutSeeksBeforeInputWithFlooredStart(t *testing.T) {
	runner := &fakeRunner{}
	cutter := SegmentCutter{Runner: runner}
	out := filepath.Join(t.TempDir(), "clip-a.mp4")

	if err := cutter.Cut(context.Background(), "https://cdn.example/stream", 10.9, 14.5, out); err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if runner.name != "ffmpeg" {
		t.Fatalf("expected default ffmpeg binary, got %q", runner.name)
	}

	ss := argIndex(runner.args, "-ss")
	in := argIndex(runner.args, "-i")
	if ss < 0 || in < 0 || ss > in {
		t.Fatalf("-ss must precede -i for fast remote seeking, args=%v", runner.args)
	}
	if runner.args[ss+1] != "10" {
		t.Fatalf("seek point must be floored to whole seconds, got %q", runner.args[ss+1])
	}
	dur := argIndex(runner.args, "-t")
	if dur < 0 || runner.args[dur+1] != "14.500" {
		t.Fatalf("duration must keep sub-second precision, args=%v", runner.args)
	}
	if v := argIndex(runner.args, "-c:v"); v < 0 || runner.args[v+1] != "copy" {
		t.Fatalf("video stream must be copied, args=%v", runner.args)
	}
	if a := argIndex(runner.args, "-c:a"); a < 0 || runner.args[a+1] != "aac" {
		t.Fatalf("audio must be re-encoded to aac, args=%v", runner.args)
	}
	if runner.args[len(runner.args)-1] != out {
		t.Fatalf("output path must be the final argument, args=%v", runner.args)
	}
}

func TestCutFailureRemovesPartialOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "clip-a.mp4")
	runner := &fakeRunner{
		err:    errors.New("ffmpeg exited with code 1"),
		result: ports.CommandResult{Stderr: "Connection reset by peer"},
		run: func(_ []string) {
			if err := os.WriteFile(out, []byte("partial"), 0o644); err != nil {
				t.Fatalf("write partial: %v", err)
			}
		},
	}
	cutter := SegmentCutter{Runner: runner}

	err := cutter.Cut(context.Background(), "https://cdn.example/stream", 0, 5, out)
	if !errors.Is(err, domainerrors.ErrCutFailed) {
		t.Fatalf("expected ErrCutFailed, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("partial output must be removed, stat err=%v", statErr)
	}
}

func TestCutTimeoutIsDistinct(t *testing.T) {
	cutter := SegmentCutter{Runner: &fakeRunner{block: true}, Timeout: 20 * time.Millisecond}
	out := filepath.Join(t.TempDir(), "clip-a.mp4")

	err := cutter.Cut(context.Background(), "https://cdn.example/stream", 0, 5, out)
	if !errors.Is(err, domainerrors.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if errors.Is(err, domainerrors.ErrCutFailed) {
		t.Fatalf("timeout must not be reported as cut failure: %v", err)
	}
}

func TestCutRejectsInvalidWindow(t *testing.T) {
	cutter := SegmentCutter{Runner: &fakeRunner{}}
	out := filepath.Join(t.TempDir(), "clip-a.mp4")

	if err := cutter.Cut(context.Background(), "https://cdn.example/stream", -1, 5, out); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("negative start: expected ErrInvalidRequest, got %v", err)
	}
	if err := cutter.Cut(context.Background(), "https://cdn.example/stream", 0, 0, out); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("zero duration: expected ErrInvalidRequest, got %v", err)
	}
}
