package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deptree/pkg/deptree"
	pkgio "github.com/matzehuels/deptree/pkg/io"
	"github.com/matzehuels/deptree/pkg/pipeline"
	"github.com/matzehuels/deptree/pkg/render/nodelink"
)

// renderCommand creates the render command, which draws a parse previously
// saved by 'deptree parse'. No API key is needed.
func (c *CLI) renderCommand() *cobra.Command {
	var rf renderFlags

	cmd := &cobra.Command{
		Use:   "render [parse.json]",
		Short: "Render a saved dependency parse",
		Long: `Render a dependency parse saved by 'deptree parse'. The parse is read from
the given file, or from stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := nodelink.ValidateFormat(rf.format); err != nil {
				return err
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runRender(cmd.Context(), input, &rf)
		},
	}

	rf.register(cmd)
	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, rf *renderFlags) error {
	p, err := c.loadParse(input)
	if err != nil {
		return err
	}

	var opts pipeline.Options
	rf.apply(&opts)
	runner := pipeline.NewRunner(nil, c.Logger)

	dot, err := runner.Layout(ctx, p, opts)
	if err != nil {
		return err
	}
	data, err := runner.Render(ctx, dot, opts)
	if err != nil {
		return err
	}

	if err := writeOutput(rf.output, data, c.stdout); err != nil {
		return err
	}
	if rf.output != "" {
		printSuccess(c.stderr, "Rendered %s", rf.format)
		printFile(c.stderr, rf.output)
	}
	return nil
}

func (c *CLI) loadParse(path string) (*deptree.Parse, error) {
	if path == "" || path == "-" {
		return pkgio.ReadJSON(c.stdin)
	}
	return pkgio.ImportJSON(path)
}
