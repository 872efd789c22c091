// Package server exposes the cloud pipeline over HTTP.
//
// The API is deliberately small: POST /api/clouds runs the full pipeline on
// the posted text and returns the rendered artifact, GET /healthz reports
// liveness. Multiple instances can share a Redis or MongoDB cache so repeated
// requests for the same text hit cached layouts and artifacts.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mkessel/cumulus/pkg/errors"
	"github.com/mkessel/cumulus/pkg/pipeline"
)

// requestTimeout bounds a single pipeline run.
const requestTimeout = 60 * time.Second

// Server handles HTTP requests by running the cloud pipeline.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server around a configured pipeline runner.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Router builds the chi router with all routes and middleware registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/clouds", s.handleGenerate)

	return r
}

// GenerateRequest is the JSON body for POST /api/clouds.
type GenerateRequest struct {
	Text       string   `json:"text"`
	Title      string   `json:"title,omitempty"`
	Width      int      `json:"width,omitempty"`
	Height     int      `json:"height,omitempty"`
	MinLength  int      `json:"min_length,omitempty"`
	MaxWords   int      `json:"max_words,omitempty"`
	Style      string   `json:"style,omitempty"`
	Background string   `json:"background,omitempty"`
	Palette    []string `json:"palette,omitempty"`
	Format     string   `json:"format,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Refresh    bool     `json:"refresh,omitempty"`
}

// contentTypes maps output formats to their MIME types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:   "image/svg+xml",
	pipeline.FormatPNG:   "image/png",
	pipeline.FormatPDF:   "application/pdf",
	pipeline.FormatJSON:  "application/json",
	pipeline.FormatDOT:   "text/vnd.graphviz",
	pipeline.FormatGraph: "image/svg+xml",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body: " + err.Error()})
		return
	}
	if req.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text is required"})
		return
	}

	format := req.Format
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	opts := pipeline.Options{
		Text:       req.Text,
		Title:      req.Title,
		Width:      req.Width,
		Height:     req.Height,
		MinLength:  req.MinLength,
		MaxWords:   req.MaxWords,
		Style:      req.Style,
		Background: req.Background,
		Palette:    req.Palette,
		Scale:      req.Scale,
		Formats:    []string{format},
		Refresh:    req.Refresh,
	}

	start := time.Now()
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}

	data, ok := result.Artifacts[format]
	if !ok {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "no artifact produced"})
		return
	}

	s.logger.Info("generated cloud",
		"request_id", middleware.GetReqID(r.Context()),
		"format", format,
		"words", len(result.Layout.Words),
		"cached", result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
		"duration", time.Since(start).Round(time.Millisecond))

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// statusFor maps pipeline error codes to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrCodeInvalidInput),
		errors.Is(err, errors.ErrCodeInvalidFormat),
		errors.Is(err, errors.ErrCodeInvalidStyle),
		errors.Is(err, errors.ErrCodeInvalidSize),
		errors.Is(err, errors.ErrCodeInvalidManifest):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound),
		errors.Is(err, errors.ErrCodeFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
