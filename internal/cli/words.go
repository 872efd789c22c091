package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mkessel/cumulus/pkg/pipeline"
	"github.com/mkessel/cumulus/pkg/words"
)

// wordsCommand creates the words command for inspecting word frequencies.
func (c *CLI) wordsCommand() *cobra.Command {
	var (
		output      string
		interactive bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "words [input.txt]",
		Short: "Count and inspect words without building a cloud",
		Long: `Count and inspect words without building a cloud.

The words command runs only the parsing stage: it counts word frequencies,
applies stop word and length filters, and prints the result. With -o it
writes a TOML manifest that 'generate' can consume, which is handy for
hand-tuning the word list before rendering.

With --interactive the word list opens in a picker where individual words
can be toggled off before the manifest is written.`,
		Example: `  cumulus words speech.txt
  cumulus words speech.txt --max-words 30 -o cloud.toml
  cumulus words speech.txt -i -o cloud.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyInput(&opts, args, cmd.InOrStdin()); err != nil {
				return err
			}
			return c.runWords(cmd.Context(), opts, output, interactive)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write a TOML manifest instead of printing")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick words interactively before writing")
	bindInputFlags(cmd, &opts)

	return cmd
}

// runWords parses the input and prints or exports the word list.
func (c *CLI) runWords(ctx context.Context, opts pipeline.Options, output string, interactive bool) error {
	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}

	opts.Logger = c.Logger
	ws, err := runner.Parse(ctx, &opts)
	if err != nil {
		return err
	}

	if interactive {
		ws, err = pickWords(ws)
		if err != nil {
			return err
		}
		if len(ws) == 0 {
			printWarning("No words selected")
			return nil
		}
	}

	if output == "" {
		printWordTable(ws)
		return nil
	}

	if err := writeManifest(ws, opts.Title, output); err != nil {
		return err
	}
	printSuccess("Wrote %d words", len(ws))
	printFile(output)
	printNewline()
	printNextStep("Generate", "cumulus generate -m "+output)
	return nil
}

// pickWords opens the interactive word picker and returns the kept words.
func pickWords(ws []words.Word) ([]words.Word, error) {
	model := newWordListModel(ws)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, fmt.Errorf("word picker: %w", err)
	}
	m, ok := final.(wordListModel)
	if !ok || m.aborted {
		return nil, fmt.Errorf("selection cancelled")
	}
	return m.kept(), nil
}

// writeManifest exports words as a TOML manifest compatible with generate -m.
func writeManifest(ws []words.Word, title, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if title != "" {
		fmt.Fprintf(f, "title = %q\n\n", title)
	}
	for _, w := range ws {
		fmt.Fprintf(f, "[[words]]\ntext = %q\nweight = %g\n\n", w.Text, w.Weight)
	}
	return nil
}
