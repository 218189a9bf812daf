package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deptree/pkg/pipeline"
	"github.com/matzehuels/deptree/pkg/render/nodelink"
)

// rootCommand creates the command that runs the full pipeline.
func (c *CLI) rootCommand() *cobra.Command {
	var af analysisFlags
	var rf renderFlags

	cmd := &cobra.Command{
		Use:   "deptree",
		Short: "deptree renders dependency parse trees as diagrams",
		Long: `deptree sends text to the Rosette syntax dependencies API and renders the
returned parse trees with Graphviz, one tree per sentence.

Input is read from stdin unless --input names a file or gives the text inline.
The API key is taken from --key, $ROSETTE_USER_KEY, or the config file.`,
		Example: `  echo "Let's make a graph." | deptree -o graph.svg
  deptree -i "Dogs bark." -f dot
  deptree -u -i https://en.wikipedia.org/wiki/Graphviz -b -o graphviz.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := nodelink.ValidateFormat(rf.format); err != nil {
				return err
			}
			return c.runRoot(cmd.Context(), &af, &rf)
		},
	}

	af.register(cmd)
	rf.register(cmd)
	return cmd
}

func (c *CLI) runRoot(ctx context.Context, af *analysisFlags, rf *renderFlags) error {
	runner, opts, err := c.newRunner(af)
	if err != nil {
		return err
	}
	rf.apply(&opts)

	prog := newProgress(c.Logger)
	var result *pipeline.Result
	err = c.withSpinner(ctx, "Analyzing dependencies...", func() error {
		var err error
		result, err = runner.Execute(ctx, opts)
		return err
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("rendered %d tokens", result.Stats.TokenCount))

	if err := writeOutput(rf.output, result.Artifact, c.stdout); err != nil {
		return err
	}
	if rf.output != "" {
		printSuccess(c.stderr, "Rendered %s", opts.Format)
		printFile(c.stderr, rf.output)
		printStats(c.stderr, result.Stats.SentenceCount, result.Stats.TokenCount, result.Stats.EdgeCount)
	}
	return nil
}
