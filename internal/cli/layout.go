package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkessel/cumulus/pkg/pipeline"
	"github.com/mkessel/cumulus/pkg/render/cloud"
)

// layoutCommand creates the layout command for computing cloud layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [input.txt]",
		Short: "Compute a cloud layout without rendering",
		Long: `Compute a cloud layout without rendering.

The layout command runs parsing and placement, then writes the resulting
layout as JSON. The layout records every word's rectangle and font size, so
it can be rendered later with 'visualize' without re-running placement.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyInput(&opts, args, cmd.InOrStdin()); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")
	bindInputFlags(cmd, &opts)
	bindLayoutFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style recorded in the layout: simple (default), ink")

	return cmd
}

// runLayout parses the input, places the words, and writes the layout JSON.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	opts.Logger = c.Logger

	ws, err := runner.Parse(ctx, &opts)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Placing words...")
	spinner.Start()

	l, cacheHit, err := runner.ComputeLayout(ctx, ws, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = inputBase(opts) + ".layout.json"
	}

	if err := cloud.Export(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(l.Words), cacheHit)
	printNewline()
	printNextStep("Render", "cumulus visualize "+outputPath)

	return nil
}
