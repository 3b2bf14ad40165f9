package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{"SERVICE_NAME", "HTTP_PORT", "PORT", "CLIP_DIR", "YTDLP_PATH", "FFMPEG_PATH", "CUT_TIMEOUT", "ENABLE_SWEEPER"} {
		t.Setenv(name, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServiceName != "clipserve" {
		t.Fatalf("unexpected service name %q", cfg.ServiceName)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("unexpected port %q", cfg.HTTPPort)
	}
	if cfg.ClipDir != "/data/clips" {
		t.Fatalf("unexpected clip dir %q", cfg.ClipDir)
	}
	if cfg.YtDlpPath != "yt-dlp" || cfg.FFmpegPath != "ffmpeg" {
		t.Fatalf("unexpected tool paths %q %q", cfg.YtDlpPath, cfg.FFmpegPath)
	}
	if cfg.CutTimeout != 5*time.Minute {
		t.Fatalf("unexpected cut timeout %s", cfg.CutTimeout)
	}
	if !cfg.EnableSweeper {
		t.Fatal("sweeper should default to enabled")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CLIP_DIR", "/tmp/clips")
	t.Setenv("PUBLIC_BASE_URL", " https://clips.example.net ")
	t.Setenv("CUT_TIMEOUT", "90s")
	t.Setenv("ENABLE_SWEEPER", "off")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPPort != "9000" {
		t.Fatalf("PORT fallback not honored, got %q", cfg.HTTPPort)
	}
	if cfg.ClipDir != "/tmp/clips" {
		t.Fatalf("unexpected clip dir %q", cfg.ClipDir)
	}
	if cfg.PublicBaseURL != "https://clips.example.net" {
		t.Fatalf("public base not trimmed, got %q", cfg.PublicBaseURL)
	}
	if cfg.CutTimeout != 90*time.Second {
		t.Fatalf("unexpected cut timeout %s", cfg.CutTimeout)
	}
	if cfg.EnableSweeper {
		t.Fatal("ENABLE_SWEEPER=off not honored")
	}
}

func TestEnvDurationRejectsGarbage(t *testing.T) {
	t.Setenv("RESOLVE_TIMEOUT", "yesterday")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ResolveTimeout != 60*time.Second {
		t.Fatalf("expected fallback timeout, got %s", cfg.ResolveTimeout)
	}
}
