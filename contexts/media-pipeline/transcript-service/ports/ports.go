package ports

import "context"

// CaptionTrack describes one caption track offered for a video.
// Kind is "asr" for speech-recognition tracks, empty for uploaded ones.
type CaptionTrack struct {
	LanguageCode string
	Name         string
	Kind         string
}

type TranscriptCue struct {
	Start    float64
	Duration float64
	Text     string
}

// CaptionProvider is the read-only boundary to the third-party captioning
// service. ListTracks returning an empty slice means captions are disabled
// for the video.
type CaptionProvider interface {
	ListTracks(ctx context.Context, videoID string) ([]CaptionTrack, error)
	FetchTrack(ctx context.Context, videoID string, track CaptionTrack) ([]TranscriptCue, error)
}
