package httpadapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/application"
	domainerrors "github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/domain/errors"
	"github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/ports"
	httptransport "github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/transport/http"
)

type Handler struct {
	Service       application.Service
	PublicBaseURL string
	Logger        *slog.Logger
}

func (h Handler) CutVideoHandler(
	ctx context.Context,
	requestHost string,
	req httptransport.CutVideoRequest,
) (httptransport.CutVideoResponse, error) {
	sourceRef := strings.TrimSpace(req.SourceReference)
	if sourceRef == "" {
		// legacy field name from the first revision of this API
		sourceRef = strings.TrimSpace(req.YoutubeURL)
	}
	if sourceRef == "" || !req.StartTime.Set || !req.EndTime.Set {
		return httptransport.CutVideoResponse{}, fmt.Errorf("missing parameters: %w", domainerrors.ErrInvalidRequest)
	}

	artifact, err := h.Service.CreateClip(ctx, application.CreateClipInput{
		SourceRef: sourceRef,
		Start:     req.StartTime.Value,
		End:       req.EndTime.Value,
	})
	if err != nil {
		return httptransport.CutVideoResponse{}, err
	}

	return httptransport.CutVideoResponse{
		Status:        "success",
		FileName:      artifact.FileName,
		ClipURLPublic: h.publicURL(requestHost, artifact.FileName),
	}, nil
}

func (h Handler) CleanupClipHandler(
	ctx context.Context,
	req httptransport.CleanupClipRequest,
) (httptransport.CleanupClipResponse, error) {
	fileName := strings.TrimSpace(req.FileName)
	if fileName == "" {
		return httptransport.CleanupClipResponse{}, fmt.Errorf("file name missing: %w", domainerrors.ErrInvalidRequest)
	}

	outcome, err := h.Service.CleanupClip(ctx, fileName)
	if err != nil {
		return httptransport.CleanupClipResponse{}, err
	}
	switch outcome {
	case application.CleanupRemoved:
		return httptransport.CleanupClipResponse{
			Status:  "success",
			Message: fmt.Sprintf("File %s deleted.", fileName),
		}, nil
	default:
		return httptransport.CleanupClipResponse{
			Status:  "warning",
			Message: fmt.Sprintf("File %s not found.", fileName),
		}, nil
	}
}

func (h Handler) OpenClipHandler(
	ctx context.Context,
	fileName string,
) (io.ReadCloser, ports.ArtifactInfo, error) {
	return h.Service.ServeClip(ctx, fileName)
}

// publicURL builds the externally reachable clip URL from the configured
// public base, falling back to the inbound request host.
func (h Handler) publicURL(requestHost string, fileName string) string {
	base := strings.TrimSpace(h.PublicBaseURL)
	if base == "" {
		base = requestHost
	}
	base = strings.TrimRight(base, "/")
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	return base + "/clips/" + fileName
}
