package config

import (
	"os"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName   string
	HTTPPort      string
	PublicBaseURL string

	ClipDir    string
	YtDlpPath  string
	FFmpegPath string

	ResolveTimeout time.Duration
	CutTimeout     time.Duration

	SweepInterval time.Duration
	ClipMaxAge    time.Duration
	EnableSweeper bool
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "clipserve"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	return Config{
		ServiceName:   service,
		HTTPPort:      port,
		PublicBaseURL: strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL")),

		ClipDir:    envString("CLIP_DIR", "/data/clips"),
		YtDlpPath:  envString("YTDLP_PATH", "yt-dlp"),
		FFmpegPath: envString("FFMPEG_PATH", "ffmpeg"),

		ResolveTimeout: envDuration("RESOLVE_TIMEOUT", 60*time.Second),
		CutTimeout:     envDuration("CUT_TIMEOUT", 5*time.Minute),

		SweepInterval: envDuration("SWEEP_INTERVAL", 10*time.Minute),
		ClipMaxAge:    envDuration("CLIP_MAX_AGE", 24*time.Hour),
		EnableSweeper: envBool("ENABLE_SWEEPER", true),
	}, nil
}

func envString(name string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	return value
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
