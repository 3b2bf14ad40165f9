package errors

import "errors"

var (
	ErrInvalidRequest        = errors.New("invalid request")
	ErrCaptionsDisabled      = errors.New("captions are disabled for this video")
	ErrNoSupportedTrack      = errors.New("no caption track in a supported language")
	ErrTranscriptUnavailable = errors.New("transcript lookup failed")
)
