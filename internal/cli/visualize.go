package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkessel/cumulus/pkg/pipeline"
	"github.com/mkessel/cumulus/pkg/render/cloud"
)

// visualizeCommand creates the visualize command for rendering from a layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render a cloud from a computed layout",
		Long: `Render a cloud from a computed layout.

The visualize command takes a layout.json file (produced by 'layout') and
renders it to the requested formats. The layout contains every word's
rectangle and font size, so this step is purely about rendering.

Use 'generate' as a shortcut to go directly from text to visual output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			return c.runVisualize(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot, graph (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	bindRenderFlags(cmd, &opts)

	return cmd
}

// runVisualize loads the layout and renders it.
func (c *CLI) runVisualize(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	l, err := cloud.Import(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	opts.Logger = c.Logger
	if opts.Style == "" && l.Style != "" {
		opts.Style = l.Style
	}
	if opts.Title == "" && l.Title != "" {
		opts.Title = l.Title
	}

	spinner := newSpinnerWithContext(ctx, "Rendering cloud...")
	spinner.Start()

	artifacts, cacheHit, err := runner.Render(ctx, l, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("visualize: %w", err)
	}
	spinner.Stop()

	base := strings.TrimSuffix(strings.TrimSuffix(input, filepath.Ext(input)), ".layout")
	if err := writeArtifacts(artifacts, opts.Formats, output, base); err != nil {
		return err
	}

	printSuccess("Render complete")
	printStats(len(l.Words), cacheHit)
	return nil
}
