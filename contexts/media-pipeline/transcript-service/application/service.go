package application

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	domainerrors "github.com/clipworks/clipserve/contexts/media-pipeline/transcript-service/domain/errors"
	"github.com/clipworks/clipserve/contexts/media-pipeline/transcript-service/ports"
)

// Service performs the read-only transcript lookup against the captioning
// provider. It owns track selection; the provider adapter owns the wire.
type Service struct {
	Provider ports.CaptionProvider
	Logger   *slog.Logger
}

// preferredLanguages are tried in order before falling back to any track
// whose language code starts with "en".
var preferredLanguages = []string{"en", "en-US", "en-GB"}

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

func (s Service) GetTranscript(ctx context.Context, sourceRef string) ([]ports.TranscriptCue, error) {
	videoID, err := ExtractVideoID(sourceRef)
	if err != nil {
		return nil, err
	}

	tracks, err := s.Provider.ListTracks(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("list caption tracks for %s: %w", videoID, domainerrors.ErrTranscriptUnavailable)
	}
	if len(tracks) == 0 {
		return nil, fmt.Errorf("%s: %w", videoID, domainerrors.ErrCaptionsDisabled)
	}

	track, ok := selectTrack(tracks)
	if !ok {
		return nil, fmt.Errorf("%s: %w", videoID, domainerrors.ErrNoSupportedTrack)
	}

	cues, err := s.Provider.FetchTrack(ctx, videoID, track)
	if err != nil {
		return nil, fmt.Errorf("fetch caption track %s/%s: %w", videoID, track.LanguageCode, domainerrors.ErrTranscriptUnavailable)
	}
	sort.SliceStable(cues, func(i, j int) bool { return cues[i].Start < cues[j].Start })

	if s.Logger != nil {
		s.Logger.Debug("transcript fetched",
			"event", "transcript_fetched",
			"module", "media-pipeline/transcript-service",
			"layer", "application",
			"video_id", videoID,
			"language", track.LanguageCode,
			"cues", len(cues),
		)
	}
	return cues, nil
}

// selectTrack prefers uploaded tracks in the preferred languages, then
// speech-recognition tracks in those languages, then any English variant.
func selectTrack(tracks []ports.CaptionTrack) (ports.CaptionTrack, bool) {
	byLanguage := func(language string, allowASR bool) (ports.CaptionTrack, bool) {
		for _, track := range tracks {
			if !strings.EqualFold(track.LanguageCode, language) {
				continue
			}
			if track.Kind == "asr" && !allowASR {
				continue
			}
			return track, true
		}
		return ports.CaptionTrack{}, false
	}

	for _, allowASR := range []bool{false, true} {
		for _, language := range preferredLanguages {
			if track, ok := byLanguage(language, allowASR); ok {
				return track, true
			}
		}
	}
	for _, track := range tracks {
		if strings.HasPrefix(strings.ToLower(track.LanguageCode), "en") {
			return track, true
		}
	}
	return ports.CaptionTrack{}, false
}

// ExtractVideoID accepts watch URLs, youtu.be short links, /shorts/ and
// /embed/ paths, and bare 11-character IDs.
func ExtractVideoID(sourceRef string) (string, error) {
	ref := strings.TrimSpace(sourceRef)
	if ref == "" {
		return "", fmt.Errorf("source reference is required: %w", domainerrors.ErrInvalidRequest)
	}
	if videoIDPattern.MatchString(ref) {
		return ref, nil
	}

	candidate := ""
	switch {
	case strings.Contains(ref, "youtu.be/"):
		candidate = after(ref, "youtu.be/")
	case strings.Contains(ref, "/shorts/"):
		candidate = after(ref, "/shorts/")
	case strings.Contains(ref, "/embed/"):
		candidate = after(ref, "/embed/")
	case strings.Contains(ref, "v="):
		candidate = after(ref, "v=")
	}
	parts := strings.FieldsFunc(candidate, func(r rune) bool {
		return r == '?' || r == '&' || r == '/' || r == '#'
	})
	if len(parts) > 0 && videoIDPattern.MatchString(parts[0]) {
		return parts[0], nil
	}
	return "", fmt.Errorf("cannot extract a video id from %q: %w", sourceRef, domainerrors.ErrInvalidRequest)
}

func after(value string, marker string) string {
	idx := strings.Index(value, marker)
	if idx < 0 {
		return ""
	}
	return value[idx+len(marker):]
}
