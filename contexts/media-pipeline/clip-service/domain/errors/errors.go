package errors

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidFilename  = errors.New("invalid file name")
	ErrResolutionFailed = errors.New("stream resolution failed")
	ErrCutFailed        = errors.New("segment cut failed")
	ErrNotFound         = errors.New("clip not found")
	ErrTimeout          = errors.New("external tool timed out")
)
