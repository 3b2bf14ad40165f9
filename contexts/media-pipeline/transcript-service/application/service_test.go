package application

import (
	"context"
	"errors"
	"testing"

	domainerrors "github.com/clipworks/clipserve/contexts/media-pipeline/transcript-service/domain/errors"
	"github.com/clipworks/clipserve/contexts/media-pipeline/transcript-service/ports"
)

type fakeProvider struct {
	tracks    []ports.CaptionTrack
	listErr   error
	cues      []ports.TranscriptCue
	fetchErr  error
	fetched   ports.CaptionTrack
	fetchedID string
}

func (p *fakeProvider) ListTracks(_ context.Context, _ string) ([]ports.CaptionTrack, error) {
	return p.tracks, p.listErr
}

func (p *fakeProvider) FetchTrack(_ context.Context, videoID string, track ports.CaptionTrack) ([]ports.TranscriptCue, error) {
	p.fetchedID = videoID
	p.fetched = track
	return p.cues, p.fetchErr
}

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch url extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", false},
		{"short link", "https://youtu.be/dQw4w9WgXcQ?si=abc", "dQw4w9WgXcQ", false},
		{"shorts", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"bare id", "dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"empty", "   ", "", true},
		{"garbage", "not a video", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractVideoID(tc.ref)
			if tc.wantErr {
				if !errors.Is(err, domainerrors.ErrInvalidRequest) {
					t.Fatalf("expected ErrInvalidRequest, got %v", err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("got %q err=%v, want %q", got, err, tc.want)
			}
		})
	}
}

func TestGetTranscriptNoTracksMeansCaptionsDisabled(t *testing.T) {
	service := Service{Provider: &fakeProvider{}}
	_, err := service.GetTranscript(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, domainerrors.ErrCaptionsDisabled) {
		t.Fatalf("expected ErrCaptionsDisabled, got %v", err)
	}
}

func TestGetTranscriptUnsupportedLanguagesOnly(t *testing.T) {
	service := Service{Provider: &fakeProvider{
		tracks: []ports.CaptionTrack{
			{LanguageCode: "de"},
			{LanguageCode: "fr", Kind: "asr"},
		},
	}}
	_, err := service.GetTranscript(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, domainerrors.ErrNoSupportedTrack) {
		t.Fatalf("expected ErrNoSupportedTrack, got %v", err)
	}
}

func TestGetTranscriptPrefersUploadedEnglishOverASR(t *testing.T) {
	provider := &fakeProvider{
		tracks: []ports.CaptionTrack{
			{LanguageCode: "en", Kind: "asr"},
			{LanguageCode: "en-GB"},
		},
		cues: []ports.TranscriptCue{{Start: 1, Text: "hello"}},
	}
	service := Service{Provider: provider}

	_, err := service.GetTranscript(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("GetTranscript: %v", err)
	}
	if provider.fetched.LanguageCode != "en-GB" || provider.fetched.Kind == "asr" {
		t.Fatalf("expected uploaded en-GB track, got %+v", provider.fetched)
	}
}

func TestGetTranscriptFallsBackToEnglishVariant(t *testing.T) {
	provider := &fakeProvider{
		tracks: []ports.CaptionTrack{
			{LanguageCode: "de"},
			{LanguageCode: "en-IE", Kind: "asr"},
		},
		cues: []ports.TranscriptCue{{Start: 0, Text: "hi"}},
	}
	service := Service{Provider: provider}

	if _, err := service.GetTranscript(context.Background(), "dQw4w9WgXcQ"); err != nil {
		t.Fatalf("GetTranscript: %v", err)
	}
	if provider.fetched.LanguageCode != "en-IE" {
		t.Fatalf("expected en-IE fallback, got %+v", provider.fetched)
	}
}

func TestGetTranscriptOrdersCuesByStart(t *testing.T) {
	provider := &fakeProvider{
		tracks: []ports.CaptionTrack{{LanguageCode: "en"}},
		cues: []ports.TranscriptCue{
			{Start: 9.2, Text: "later"},
			{Start: 1.5, Text: "first"},
		},
	}
	service := Service{Provider: provider}

	cues, err := service.GetTranscript(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("GetTranscript: %v", err)
	}
	if len(cues) != 2 || cues[0].Text != "first" || cues[1].Text != "later" {
		t.Fatalf("cues not ordered by start: %+v", cues)
	}
}

func TestGetTranscriptProviderFailures(t *testing.T) {
	listFailed := Service{Provider: &fakeProvider{listErr: errors.New("503")}}
	if _, err := listFailed.GetTranscript(context.Background(), "dQw4w9WgXcQ"); !errors.Is(err, domainerrors.ErrTranscriptUnavailable) {
		t.Fatalf("list failure: expected ErrTranscriptUnavailable, got %v", err)
	}

	fetchFailed := Service{Provider: &fakeProvider{
		tracks:   []ports.CaptionTrack{{LanguageCode: "en"}},
		fetchErr: errors.New("timeout"),
	}}
	if _, err := fetchFailed.GetTranscript(context.Background(), "dQw4w9WgXcQ"); !errors.Is(err, domainerrors.ErrTranscriptUnavailable) {
		t.Fatalf("fetch failure: expected ErrTranscriptUnavailable, got %v", err)
	}
}
