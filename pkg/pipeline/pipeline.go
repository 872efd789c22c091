// Package pipeline provides the core cloud generation pipeline for cumulus.
//
// This package implements the complete parse → layout → render pipeline that
// can be used by CLI and server components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Extract weighted words from free text, a file or URL, or a TOML manifest
//  2. Layout: Size the words and place them on the spiral
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Text:    corpus,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Parse only
//	ws, err := runner.Parse(ctx, opts)
//
//	// Layout with existing words
//	layout, err := runner.ComputeLayout(ctx, ws, opts)
//
//	// Render with existing layout
//	artifacts, err := runner.Render(ctx, layout, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mkessel/cumulus/pkg/errors"
	"github.com/mkessel/cumulus/pkg/httputil"
	"github.com/mkessel/cumulus/pkg/render/cloud"
	"github.com/mkessel/cumulus/pkg/render/cloud/styles"
	"github.com/mkessel/cumulus/pkg/words"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600

	// DefaultMaxWords caps how many words make it into the cloud.
	DefaultMaxWords = 100

	// DefaultStyle is the default visual style.
	DefaultStyle = "simple"

	// DefaultTTL is how long cached layouts and artifacts live.
	DefaultTTL = 24 * time.Hour
)

// Format constants for output formats. FormatDOT emits the contact graph as
// Graphviz DOT source; FormatGraph runs that source through Graphviz and
// emits the resulting SVG.
const (
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatPDF   = "pdf"
	FormatJSON  = "json"
	FormatDOT   = "dot"
	FormatGraph = "graph"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:   true,
	FormatPNG:   true,
	FormatPDF:   true,
	FormatJSON:  true,
	FormatDOT:   true,
	FormatGraph: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the cloud pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Parse options. Exactly one of Text, InputPath or Manifest must be set.
	Text      string `json:"text,omitempty"`
	InputPath string `json:"input_path,omitempty"`
	Manifest  string `json:"manifest,omitempty"`
	MinLength int    `json:"min_length,omitempty"`
	MaxWords  int    `json:"max_words,omitempty"`

	// Sizing options
	MinFontSize float64 `json:"min_font_size,omitempty"`
	MaxFontSize float64 `json:"max_font_size,omitempty"`
	Padding     int     `json:"padding,omitempty"`
	FontPath    string  `json:"font_path,omitempty"`

	// Layout options
	Title          string  `json:"title,omitempty"`
	Width          int     `json:"width,omitempty"`
	Height         int     `json:"height,omitempty"`
	AngleStep      float64 `json:"angle_step,omitempty"`
	RadiusGrowth   float64 `json:"radius_growth,omitempty"`
	CompactionStep float64 `json:"compaction_step,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Style      string   `json:"style,omitempty"`
	Background string   `json:"background,omitempty"`
	Palette    []string `json:"palette,omitempty"`
	Boxes      bool     `json:"boxes,omitempty"`
	Scale      float64  `json:"scale,omitempty"`

	// Refresh bypasses cache reads, forcing recomputation.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Words are the weighted words that went into the layout.
	Words []words.Word

	// Layout is the computed cloud layout.
	Layout *cloud.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WordCount  int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot, graph)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	_, err := styles.For(style)
	return err
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	sources := 0
	if o.Text != "" {
		sources++
	}
	if o.InputPath != "" {
		sources++
	}
	if o.Manifest != "" {
		sources++
	}
	if sources == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "text, input path or manifest is required")
	}
	if sources > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "text, input path and manifest are mutually exclusive")
	}

	if o.MaxWords == 0 {
		o.MaxWords = DefaultMaxWords
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = 1.0
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// source names the configured input kind for logging and instrumentation.
func (o *Options) source() string {
	switch {
	case o.Manifest != "":
		return "manifest"
	case httputil.IsURL(o.InputPath):
		return "url"
	case o.InputPath != "":
		return "file"
	default:
		return "text"
	}
}

// applyManifest folds manifest settings into the options. Explicit option
// values win over manifest values.
func (o *Options) applyManifest(m *words.Manifest) {
	if o.Title == "" {
		o.Title = m.Title
	}
	if o.Width == 0 {
		o.Width = m.Layout.Width
	}
	if o.Height == 0 {
		o.Height = m.Layout.Height
	}
	if o.AngleStep == 0 {
		o.AngleStep = m.Layout.AngleStep
	}
	if o.RadiusGrowth == 0 {
		o.RadiusGrowth = m.Layout.RadiusGrowth
	}
	if o.CompactionStep == 0 {
		o.CompactionStep = m.Layout.CompactionStep
	}
	if o.Style == "" {
		o.Style = m.Render.Style
	}
	if o.Background == "" {
		o.Background = m.Render.Background
	}
	if len(o.Palette) == 0 {
		o.Palette = m.Render.Palette
	}
	if o.FontPath == "" {
		o.FontPath = m.Render.Font
	}
	if o.MinFontSize == 0 {
		o.MinFontSize = m.Render.MinFontSize
	}
	if o.MaxFontSize == 0 {
		o.MaxFontSize = m.Render.MaxFontSize
	}
}
