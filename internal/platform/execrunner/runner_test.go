package execrunner

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunCapturesStdoutAndStderr(t *testing.T) {
	requireSh(t)
	runner := New(nil)

	result, err := runner.Run(context.Background(), "sh", "-c", "echo out; echo err 1>&2")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.TrimSpace(result.Stdout) != "out" {
		t.Fatalf("unexpected stdout %q", result.Stdout)
	}
	if strings.TrimSpace(result.Stderr) != "err" {
		t.Fatalf("unexpected stderr %q", result.Stderr)
	}
}

func TestRunReportsExitCode(t *testing.T) {
	requireSh(t)
	runner := New(nil)

	result, err := runner.Run(context.Background(), "sh", "-c", "echo diagnostic 1>&2; exit 3")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if !strings.Contains(err.Error(), "code 3") {
		t.Fatalf("expected exit code in error, got %v", err)
	}
	if strings.TrimSpace(result.Stderr) != "diagnostic" {
		t.Fatalf("stderr must survive a failed run, got %q", result.Stderr)
	}
}

func TestRunKillsChildOnContextExpiry(t *testing.T) {
	requireSh(t)
	runner := New(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	started := time.Now()
	_, err := runner.Run(ctx, "sh", "-c", "sleep 10")
	if err == nil {
		t.Fatal("expected error after context expiry")
	}
	if elapsed := time.Since(started); elapsed > 5*time.Second {
		t.Fatalf("child was not killed promptly, took %s", elapsed)
	}
}

func TestRunMissingBinary(t *testing.T) {
	runner := New(nil)
	if _, err := runner.Run(context.Background(), "definitely-not-a-real-binary-xyz"); err == nil {
		t.Fatal("expected error for missing binary")
	}
}
