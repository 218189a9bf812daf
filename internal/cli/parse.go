package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deptree/pkg/deptree"
	pkgio "github.com/matzehuels/deptree/pkg/io"
)

// parseCommand creates the parse command, which runs the analysis only and
// saves the dependency parse as JSON for later rendering.
func (c *CLI) parseCommand() *cobra.Command {
	var af analysisFlags
	var output string

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Analyze text and save the dependency parse as JSON",
		Long: `Analyze text with the Rosette syntax dependencies API and write the parse
as JSON. The result can be rendered later with 'deptree render' without
another API call.`,
		Example: `  deptree parse -i article.txt -o article.json
  deptree render article.json -b -o article.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd.Context(), &af, output)
		},
	}

	af.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func (c *CLI) runParse(ctx context.Context, af *analysisFlags, output string) error {
	runner, opts, err := c.newRunner(af)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	var p *deptree.Parse
	err = c.withSpinner(ctx, "Analyzing dependencies...", func() error {
		var err error
		p, err = runner.Parse(ctx, opts)
		return err
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("analyzed %d tokens", p.TokenCount()))

	var buf bytes.Buffer
	if err := pkgio.WriteJSON(p, &buf); err != nil {
		return err
	}
	if err := writeOutput(output, buf.Bytes(), c.stdout); err != nil {
		return err
	}
	if output != "" {
		printSuccess(c.stderr, "Saved parse: %d sentences, %d tokens", len(p.Sentences), p.TokenCount())
		printFile(c.stderr, output)
	}
	return nil
}
