package youtube

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/clipworks/clipserve/contexts/media-pipeline/transcript-service/ports"
)

const defaultBaseURL = "https://www.youtube.com/api/timedtext"

// Provider reads caption data from the timedtext endpoint. Fetching and
// parsing are split so parsing stays a pure function over the response body.
type Provider struct {
	Client  *http.Client
	BaseURL string
}

func (p Provider) ListTracks(ctx context.Context, videoID string) ([]ports.CaptionTrack, error) {
	query := url.Values{}
	query.Set("type", "list")
	query.Set("v", videoID)

	body, err := p.fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	return parseTrackList(body)
}

func (p Provider) FetchTrack(ctx context.Context, videoID string, track ports.CaptionTrack) ([]ports.TranscriptCue, error) {
	query := url.Values{}
	query.Set("v", videoID)
	query.Set("lang", track.LanguageCode)
	if track.Kind != "" {
		query.Set("kind", track.Kind)
	}
	if track.Name != "" {
		query.Set("name", track.Name)
	}

	body, err := p.fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	return parseTranscript(body)
}

func (p Provider) fetch(ctx context.Context, query url.Values) ([]byte, error) {
	base := p.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timedtext request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext request: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("timedtext response: %w", err)
	}
	return body, nil
}

func parseTrackList(body []byte) ([]ports.CaptionTrack, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse track list: %w", err)
	}

	var tracks []ports.CaptionTrack
	doc.Find("track").Each(func(_ int, sel *goquery.Selection) {
		code, _ := sel.Attr("lang_code")
		if strings.TrimSpace(code) == "" {
			return
		}
		name, _ := sel.Attr("name")
		kind, _ := sel.Attr("kind")
		tracks = append(tracks, ports.CaptionTrack{
			LanguageCode: code,
			Name:         name,
			Kind:         kind,
		})
	})
	return tracks, nil
}

func parseTranscript(body []byte) ([]ports.TranscriptCue, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}

	var cues []ports.TranscriptCue
	var parseErr error
	doc.Find("text").Each(func(_ int, sel *goquery.Selection) {
		startRaw, ok := sel.Attr("start")
		if !ok {
			return
		}
		start, err := strconv.ParseFloat(startRaw, 64)
		if err != nil {
			parseErr = errors.Join(parseErr, fmt.Errorf("bad cue start %q", startRaw))
			return
		}
		duration := 0.0
		if durRaw, ok := sel.Attr("dur"); ok {
			duration, _ = strconv.ParseFloat(durRaw, 64)
		}
		// timedtext bodies double-encode entities; unescape once more after
		// the HTML parser has done its pass.
		text := strings.TrimSpace(html.UnescapeString(sel.Text()))
		if text == "" {
			return
		}
		cues = append(cues, ports.TranscriptCue{
			Start:    start,
			Duration: duration,
			Text:     text,
		})
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return cues, nil
}
