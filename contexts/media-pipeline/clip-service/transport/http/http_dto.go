package http

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Seconds accepts a JSON number or a numeric string; callers historically
// sent both ("10.5" and 10.5). Set distinguishes an absent field from zero.
type Seconds struct {
	Value float64
	Set   bool
}

func (s *Seconds) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid seconds value %s", raw)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(unquoted), 64)
		if err != nil {
			return fmt.Errorf("invalid seconds value %q", unquoted)
		}
		s.Value = value
		s.Set = true
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("invalid seconds value %s", raw)
	}
	s.Value = value
	s.Set = true
	return nil
}

type CutVideoRequest struct {
	SourceReference string  `json:"source_reference"`
	YoutubeURL      string  `json:"youtube_url"`
	StartTime       Seconds `json:"start_time"`
	EndTime         Seconds `json:"end_time"`
}

type CutVideoResponse struct {
	Status        string `json:"status"`
	FileName      string `json:"file_name"`
	ClipURLPublic string `json:"clip_url_public"`
}

type CutErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type CleanupClipRequest struct {
	FileName string `json:"file_name"`
}

type CleanupClipResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type CleanupFailResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type ServeErrorResponse struct {
	Error string `json:"error"`
}
