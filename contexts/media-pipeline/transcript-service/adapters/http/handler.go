package httpadapter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/clipworks/clipserve/contexts/media-pipeline/transcript-service/application"
	domainerrors "github.com/clipworks/clipserve/contexts/media-pipeline/transcript-service/domain/errors"
	httptransport "github.com/clipworks/clipserve/contexts/media-pipeline/transcript-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) GetTranscriptHandler(
	ctx context.Context,
	req httptransport.GetTranscriptRequest,
) (httptransport.GetTranscriptResponse, error) {
	sourceRef := strings.TrimSpace(req.SourceReference)
	if sourceRef == "" {
		sourceRef = strings.TrimSpace(req.YoutubeURL)
	}
	if sourceRef == "" {
		return httptransport.GetTranscriptResponse{}, fmt.Errorf("source reference is required: %w", domainerrors.ErrInvalidRequest)
	}

	cues, err := h.Service.GetTranscript(ctx, sourceRef)
	if err != nil {
		return httptransport.GetTranscriptResponse{}, err
	}

	resp := httptransport.GetTranscriptResponse{
		Status:     "success",
		Transcript: make([]httptransport.TranscriptEntry, 0, len(cues)),
	}
	for _, cue := range cues {
		resp.Transcript = append(resp.Transcript, httptransport.TranscriptEntry{
			Start: cue.Start,
			Text:  cue.Text,
		})
	}
	return resp, nil
}
