package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mkessel/cumulus/pkg/cache"
	"github.com/mkessel/cumulus/pkg/errors"
	"github.com/mkessel/cumulus/pkg/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(cache.NewNullCache(), logger)
	srv := New(runner, logger)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
}

func TestGenerateSVG(t *testing.T) {
	ts := newTestServer(t)

	req := GenerateRequest{
		Text:  "cloud cloud cloud rain rain sun",
		Title: "Weather",
	}
	body, _ := json.Marshal(req)

	resp, err := http.Post(ts.URL+"/api/clouds", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/clouds: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want %q", ct, "image/svg+xml")
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	svg := string(data)
	if !strings.Contains(svg, "<svg") {
		t.Error("response should contain an <svg> element")
	}
	if !strings.Contains(svg, "cloud") {
		t.Error("response should contain the heaviest word")
	}
	if !strings.Contains(svg, "Weather") {
		t.Error("response should contain the title")
	}
}

func TestGenerateJSONFormat(t *testing.T) {
	ts := newTestServer(t)

	body, _ := json.Marshal(GenerateRequest{
		Text:   "alpha alpha beta",
		Format: pipeline.FormatJSON,
	})

	resp, err := http.Post(ts.URL+"/api/clouds", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/clouds: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}

	var layout struct {
		Words []struct {
			Text string `json:"text"`
		} `json:"words"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&layout); err != nil {
		t.Fatalf("decode layout: %v", err)
	}
	if len(layout.Words) != 2 {
		t.Errorf("len(words) = %d, want 2", len(layout.Words))
	}
}

func TestGenerateDOTFormat(t *testing.T) {
	ts := newTestServer(t)

	body, _ := json.Marshal(GenerateRequest{
		Text:   "alpha alpha beta",
		Format: pipeline.FormatDOT,
	})

	resp, err := http.Post(ts.URL+"/api/clouds", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/clouds: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/vnd.graphviz" {
		t.Errorf("Content-Type = %q, want %q", ct, "text/vnd.graphviz")
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.HasPrefix(string(data), "graph cloud {") {
		t.Errorf("body is not DOT source: %q", data[:min(len(data), 40)])
	}
}

func TestGenerateErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "invalid json",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing text",
			body:       `{"title":"empty"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown format",
			body:       `{"text":"hello world","format":"tiff"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown style",
			body:       `{"text":"hello world","style":"cubist"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no words survive filtering",
			body:       `{"text":"a b c","min_length":5}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/api/clouds", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("POST /api/clouds: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			var body map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body["error"] == "" {
				t.Error("error response should include a message")
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	if got := statusFor(io.EOF); got != http.StatusInternalServerError {
		t.Errorf("statusFor(io.EOF) = %d, want %d", got, http.StatusInternalServerError)
	}

	missing := errors.New(errors.ErrCodeUnsupported, "pdf export requires librsvg")
	if got := statusFor(missing); got != http.StatusNotImplemented {
		t.Errorf("statusFor(unsupported) = %d, want %d", got, http.StatusNotImplemented)
	}
}
