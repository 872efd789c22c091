package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkessel/cumulus/pkg/pipeline"
)

// generateCommand creates the generate command: the full text → cloud pipeline.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "generate [input.txt]",
		Short: "Generate a word cloud from text or a manifest",
		Long: `Generate a word cloud from text or a manifest.

The generate command runs the complete pipeline: it counts word frequencies
in the input text (or loads explicit words from a TOML manifest), sizes the
words, packs them into a compact cloud, and renders the requested formats.

Results are cached locally for faster subsequent runs.`,
		Example: `  cumulus generate speech.txt
  cumulus generate speech.txt -f svg,png -o cloud
  cumulus generate -m cloud.toml --style ink
  echo "to be or not to be" | cumulus generate -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyInput(&opts, args, cmd.InOrStdin()); err != nil {
				return err
			}
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot, graph (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")
	bindInputFlags(cmd, &opts)
	bindLayoutFlags(cmd, &opts)
	bindRenderFlags(cmd, &opts)

	return cmd
}

// applyInput resolves the positional argument into pipeline input options.
// "-" reads text from stdin; otherwise the argument is a text file path or an
// http(s) URL.
func applyInput(opts *pipeline.Options, args []string, stdin io.Reader) error {
	if len(args) == 0 {
		if opts.Manifest == "" {
			return fmt.Errorf("an input file or --manifest is required")
		}
		return nil
	}
	if opts.Manifest != "" {
		return fmt.Errorf("input file and --manifest are mutually exclusive")
	}
	if args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		opts.Text = string(data)
		return nil
	}
	opts.InputPath = args[0]
	return nil
}

// runGenerate executes the pipeline and writes the artifacts.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Placing words...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Cloud generation failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := writeArtifacts(result.Artifacts, opts.Formats, output, inputBase(opts)); err != nil {
		return err
	}

	printSuccess("Cloud complete")
	printStats(len(result.Layout.Words), result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	return nil
}

// inputBase derives a default output base name from the input source.
func inputBase(opts pipeline.Options) string {
	switch {
	case opts.InputPath != "":
		return strings.TrimSuffix(opts.InputPath, filepath.Ext(opts.InputPath))
	case opts.Manifest != "":
		return strings.TrimSuffix(opts.Manifest, filepath.Ext(opts.Manifest))
	default:
		return "cloud"
	}
}
