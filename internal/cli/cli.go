// Package cli implements the cumulus command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mkessel/cumulus/pkg/buildinfo"
	"github.com/mkessel/cumulus/pkg/cache"
	"github.com/mkessel/cumulus/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "cumulus"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "cumulus",
		Short:        "Cumulus lays out word clouds from text",
		Long:         `Cumulus is a CLI tool for turning raw text or word manifests into compact tag clouds, placing the heaviest words at the center and rendering the result as SVG, PNG, PDF, JSON or a Graphviz contact graph.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.wordsCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/cumulus/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// bindInputFlags registers the flags shared by every command that reads a
// word source.
func bindInputFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVarP(&opts.Manifest, "manifest", "m", "", "TOML manifest with explicit words and settings")
	cmd.Flags().IntVar(&opts.MinLength, "min-length", 0, "drop words shorter than this many runes")
	cmd.Flags().IntVar(&opts.MaxWords, "max-words", 0, "cap the cloud at the heaviest N words")
}

// bindLayoutFlags registers the flags that control sizing and placement.
func bindLayoutFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVar(&opts.Title, "title", "", "cloud title")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "canvas height in pixels")
	cmd.Flags().Float64Var(&opts.MinFontSize, "min-font-size", 0, "smallest font size in pixels")
	cmd.Flags().Float64Var(&opts.MaxFontSize, "max-font-size", 0, "largest font size in pixels")
	cmd.Flags().StringVar(&opts.FontPath, "font", "", "TTF/OTF font file for exact text measurement")
	cmd.Flags().Float64Var(&opts.AngleStep, "angle-step", 0, "spiral angle step in radians")
	cmd.Flags().Float64Var(&opts.RadiusGrowth, "radius-growth", 0, "spiral radius growth in pixels per radian")
}

// bindRenderFlags registers the flags that control output appearance.
func bindRenderFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: simple (default), ink")
	cmd.Flags().StringVar(&opts.Background, "background", "", "background color (hex)")
	cmd.Flags().StringSliceVar(&opts.Palette, "palette", nil, "word colors (hex, cycled)")
	cmd.Flags().BoolVar(&opts.Boxes, "boxes", false, "draw placement rectangle outlines")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "PNG scale factor")
}
