package execrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/ports"
)

// Runner executes external tools through os/exec. exec.CommandContext kills
// the child when ctx expires, so callers bound invocations with a deadline.
type Runner struct {
	Logger *slog.Logger
}

func New(logger *slog.Logger) Runner {
	return Runner{Logger: logger}
}

func (r Runner) Run(ctx context.Context, name string, args ...string) (ports.CommandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	started := time.Now()
	err := cmd.Run()
	result := ports.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if r.Logger != nil {
		r.Logger.Debug("external tool finished",
			"event", "external_tool_finished",
			"module", "internal/platform/execrunner",
			"layer", "platform",
			"tool", name,
			"elapsed", time.Since(started).String(),
			"ok", err == nil,
		)
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("%s killed: %w", name, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return result, fmt.Errorf("%s exited with code %d", name, exitErr.ExitCode())
		}
		return result, fmt.Errorf("start %s: %w", name, err)
	}
	return result, nil
}
