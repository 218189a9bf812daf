// Package cli implements the deptree command-line interface.
//
// The root command sends text to the Rosette syntax dependencies service and
// renders the returned parse trees with Graphviz. Subcommands split the run
// in two (parse, then render a saved parse) and manage configuration.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so that observability hooks can log
// HTTP and pipeline events.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    cli.ReportError(os.Stderr, err)
//	    os.Exit(errors.ExitCode(err))
//	}
package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/deptree/internal/config"
	"github.com/matzehuels/deptree/pkg/buildinfo"
	"github.com/matzehuels/deptree/pkg/integrations"
	"github.com/matzehuels/deptree/pkg/integrations/rosette"
	"github.com/matzehuels/deptree/pkg/pipeline"
	"github.com/matzehuels/deptree/pkg/render/nodelink"
)

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

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
}

// New creates a new CLI instance whose logger and status lines write to w.
// Rendered output goes to os.Stdout and input is read from os.Stdin.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: w,
		getenv: os.Getenv,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command itself performs the full analyze → render run.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := c.rootCommand()
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
		registerHooks()
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.AddCommand(c.parseCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Flags
// =============================================================================

// analysisFlags holds the flags that select the input and the service.
type analysisFlags struct {
	input      string        // input file path or inline text (stdin when empty)
	contentURI bool          // treat the input as a URI
	key        string        // API key
	apiURL     string        // service base URL
	language   string        // ISO 639-3 language override
	timeout    time.Duration // HTTP timeout
	configPath string        // config file override
}

func (f *analysisFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "input file or inline text (default: stdin)")
	cmd.Flags().BoolVarP(&f.contentURI, "content-uri", "u", false, "treat the input as a URI to fetch content from")
	cmd.Flags().StringVarP(&f.key, "key", "k", "", "Rosette API key (default: $"+config.EnvKey+")")
	cmd.Flags().StringVarP(&f.apiURL, "api-url", "a", "", "alternative API URL (default: "+rosette.DefaultBaseURL+")")
	cmd.Flags().StringVarP(&f.language, "language", "l", "", "three-letter ISO 639-3 code overriding language detection")
	cmd.Flags().DurationVar(&f.timeout, "timeout", integrations.DefaultTimeout, "HTTP request timeout")
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/deptree/config.toml)")
}

// renderFlags holds the flags that shape the rendered output.
type renderFlags struct {
	output        string // output path (stdout when empty)
	format        string // dot, svg, png, pdf
	labelIndices  bool   // append token indices to labels
	sentenceRoots bool   // draw S1, S2, ... anchors
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&f.format, "format", "f", nodelink.DefaultFormat, "output format: dot, svg, png, pdf")
	cmd.Flags().BoolVarP(&f.labelIndices, "label-indices", "b", false, "add token index labels to show the original token order")
	cmd.Flags().BoolVar(&f.sentenceRoots, "sentence-roots", false, "draw an S1, S2, ... anchor above each sentence root")
}

func (f *renderFlags) apply(opts *pipeline.Options) {
	opts.Format = f.format
	opts.LabelIndices = f.labelIndices
	opts.SentenceRoots = f.sentenceRoots
}

// =============================================================================
// Runner Factory
// =============================================================================

// loadSettings reads the config file and resolves the run settings.
// It fails before any input is read or any client is built.
func (c *CLI) loadSettings(f *analysisFlags) (config.Settings, error) {
	path := f.configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return config.Settings{}, err
		}
		path = p
	}
	file, err := config.Load(path)
	if err != nil {
		return config.Settings{}, err
	}
	return config.Resolve(config.Flags{
		Key:      f.key,
		APIURL:   f.apiURL,
		Language: f.language,
	}, file, c.getenv)
}

// newRunner resolves settings and creates a pipeline runner backed by the
// Rosette client, along with the parse options for the requested input.
func (c *CLI) newRunner(f *analysisFlags) (*pipeline.Runner, pipeline.Options, error) {
	settings, err := c.loadSettings(f)
	if err != nil {
		return nil, pipeline.Options{}, err
	}

	text, err := readInput(f.input, c.stdin)
	if err != nil {
		return nil, pipeline.Options{}, err
	}
	opts := pipeline.Options{Language: settings.Language}
	if f.contentURI {
		opts.ContentURI = strings.TrimSpace(text)
	} else {
		opts.Content = text
	}

	c.Logger.Debug("resolved settings", "api_url", settings.APIURL, "timeout", f.timeout)
	client := rosette.NewClient(settings.Key, settings.APIURL, f.timeout)
	return pipeline.NewRunner(client, c.Logger), opts, nil
}

// withSpinner runs fn while a spinner is shown on an interactive stderr.
// Debug logging disables the spinner so log lines are not overwritten.
func (c *CLI) withSpinner(ctx context.Context, message string, fn func() error) error {
	enabled := isTerminal(c.stderr) && c.Logger.GetLevel() > log.DebugLevel
	s := newSpinner(ctx, c.stderr, message, enabled)
	s.Start()
	defer s.Stop()
	return fn()
}
