package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	clipservice "github.com/clipworks/clipserve/contexts/media-pipeline/clip-service"
	cliperrors "github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/domain/errors"
	cliphttp "github.com/clipworks/clipserve/contexts/media-pipeline/clip-service/transport/http"
	transcriptservice "github.com/clipworks/clipserve/contexts/media-pipeline/transcript-service"
	transcripterrors "github.com/clipworks/clipserve/contexts/media-pipeline/transcript-service/domain/errors"
	transcripthttp "github.com/clipworks/clipserve/contexts/media-pipeline/transcript-service/transport/http"
	_ "github.com/clipworks/clipserve/internal/platform/httpserver/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	addr        string
	clips       clipservice.Module
	transcripts transcriptservice.Module
}

func New(
	clips clipservice.Module,
	transcripts transcriptservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		addr:        addr,
		clips:       clips,
		transcripts: transcripts,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux for httptest-based tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /cut-video", s.handleCutVideo)
	s.mux.HandleFunc("POST /cleanup-clip", s.handleCleanupClip)
	s.mux.HandleFunc("GET /clips/{filename}", s.handleServeClip)
	s.mux.HandleFunc("POST /get-transcript", s.handleGetTranscript)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
}

func (s *Server) handleCutVideo(w http.ResponseWriter, r *http.Request) {
	var req cliphttp.CutVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, cliphttp.CutErrorResponse{
			Error:   "Invalid JSON body",
			Details: err.Error(),
		})
		return
	}

	resp, err := s.clips.Handler.CutVideoHandler(r.Context(), r.Host, req)
	if err != nil {
		s.writeCutVideoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCleanupClip(w http.ResponseWriter, r *http.Request) {
	var req cliphttp.CleanupClipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, cliphttp.CutErrorResponse{
			Error:   "Invalid JSON body",
			Details: err.Error(),
		})
		return
	}

	resp, err := s.clips.Handler.CleanupClipHandler(r.Context(), req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, cliperrors.ErrInvalidRequest):
		writeJSON(w, http.StatusBadRequest, cliphttp.CutErrorResponse{Error: "File name missing"})
	case errors.Is(err, cliperrors.ErrInvalidFilename):
		writeJSON(w, http.StatusBadRequest, cliphttp.CleanupFailResponse{
			Status: "fail",
			Error:  err.Error(),
		})
	default:
		writeJSON(w, http.StatusInternalServerError, cliphttp.CleanupFailResponse{
			Status: "fail",
			Error:  err.Error(),
		})
	}
}

func (s *Server) handleServeClip(w http.ResponseWriter, r *http.Request) {
	fileName := r.PathValue("filename")

	reader, info, err := s.clips.Handler.OpenClipHandler(r.Context(), fileName)
	switch {
	case err == nil:
	case errors.Is(err, cliperrors.ErrInvalidFilename):
		writeJSON(w, http.StatusBadRequest, cliphttp.ServeErrorResponse{Error: "Invalid file name"})
		return
	case errors.Is(err, cliperrors.ErrNotFound):
		writeJSON(w, http.StatusNotFound, cliphttp.ServeErrorResponse{Error: "File not found"})
		return
	default:
		writeJSON(w, http.StatusInternalServerError, cliphttp.ServeErrorResponse{Error: "Internal server error"})
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "video/mp4")
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, reader); err != nil {
		// Transfer aborted mid-stream: client disconnect, or a cleanup
		// racing this serve. Known race, accepted for single-use clips.
		s.logger.Warn("clip transfer aborted",
			"event", "clip_transfer_aborted",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"file_name", info.FileName,
			"error", err.Error(),
		)
	}
}

func (s *Server) handleGetTranscript(w http.ResponseWriter, r *http.Request) {
	var req transcripthttp.GetTranscriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, transcripthttp.TranscriptFailResponse{
			Status: "fail",
			Error:  "Invalid JSON body",
		})
		return
	}

	resp, err := s.transcripts.Handler.GetTranscriptHandler(r.Context(), req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, transcripterrors.ErrInvalidRequest):
		writeJSON(w, http.StatusBadRequest, transcripthttp.TranscriptFailResponse{
			Status: "fail",
			Error:  err.Error(),
		})
	case errors.Is(err, transcripterrors.ErrCaptionsDisabled),
		errors.Is(err, transcripterrors.ErrNoSupportedTrack):
		// Reported as a lookup outcome, not a transport failure; the caller
		// distinguishes the cases by error text.
		writeJSON(w, http.StatusOK, transcripthttp.TranscriptFailResponse{
			Status: "fail",
			Error:  err.Error(),
		})
	default:
		writeJSON(w, http.StatusOK, transcripthttp.TranscriptFailResponse{
			Status: "fail",
			Error:  err.Error(),
		})
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeCutVideoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cliperrors.ErrInvalidRequest):
		writeJSON(w, http.StatusBadRequest, cliphttp.CutErrorResponse{
			Error:   "Missing or invalid parameters",
			Details: err.Error(),
		})
	case errors.Is(err, cliperrors.ErrTimeout):
		writeJSON(w, http.StatusGatewayTimeout, cliphttp.CutErrorResponse{
			Error:   "External tool timed out",
			Details: err.Error(),
		})
	case errors.Is(err, cliperrors.ErrResolutionFailed):
		writeJSON(w, http.StatusInternalServerError, cliphttp.CutErrorResponse{
			Error:   "Stream resolution failed",
			Details: err.Error(),
		})
	case errors.Is(err, cliperrors.ErrCutFailed):
		writeJSON(w, http.StatusInternalServerError, cliphttp.CutErrorResponse{
			Error:   "Segment cut failed",
			Details: err.Error(),
		})
	default:
		writeJSON(w, http.StatusInternalServerError, cliphttp.CutErrorResponse{
			Error:   "Internal server error",
			Details: err.Error(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
