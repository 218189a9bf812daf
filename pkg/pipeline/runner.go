package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/deptree/pkg/deptree"
	"github.com/matzehuels/deptree/pkg/errors"
	"github.com/matzehuels/deptree/pkg/observability"
)

// Runner executes pipeline stages and reports them to the registered
// [observability.PipelineHooks].
//
// The Runner is stateless except for the analyzer and logger; it doesn't
// store pipeline results.
type Runner struct {
	Analyzer Analyzer
	Logger   *log.Logger
}

// NewRunner creates a runner with the given analyzer.
// The analyzer may be nil when only [Runner.Layout] and [Runner.Render] are
// used, as when re-rendering a saved parse. If logger is nil, log.Default()
// is used.
func NewRunner(a Analyzer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Analyzer: a,
		Logger:   logger,
	}
}

// Execute runs the complete parse → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Parse
	parseStart := time.Now()
	p, err := r.Parse(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Parse = p
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.SentenceCount = len(p.Sentences)
	result.Stats.TokenCount = p.TokenCount()
	result.Stats.EdgeCount = p.EdgeCount()

	r.Logger.Info("parsed dependencies",
		"sentences", result.Stats.SentenceCount,
		"tokens", result.Stats.TokenCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.ParseTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	dot, err := r.Layout(ctx, p, opts)
	if err != nil {
		return nil, err
	}
	result.DOT = dot
	result.Stats.LayoutTime = time.Since(layoutStart)

	// Stage 3: Render
	renderStart := time.Now()
	artifact, err := r.Render(ctx, dot, opts)
	if err != nil {
		return nil, err
	}
	result.Artifact = artifact
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered output",
		"format", opts.Format,
		"bytes", len(artifact),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Parse sends the input to the analyzer and returns the validated parse.
func (r *Runner) Parse(ctx context.Context, opts Options) (*deptree.Parse, error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, err
	}
	if r.Analyzer == nil {
		return nil, errors.New(errors.ErrCodeInternal, "pipeline runner has no analyzer")
	}

	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, opts.Source(), opts.Language)
	start := time.Now()

	p, err := Parse(ctx, r.Analyzer, opts)

	tokens := 0
	if p != nil {
		tokens = p.TokenCount()
	}
	hooks.OnParseComplete(ctx, opts.Language, tokens, time.Since(start), err)
	return p, err
}

// Layout translates the parse into a DOT document.
func (r *Runner) Layout(ctx context.Context, p *deptree.Parse, opts Options) (string, error) {
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(p.Sentences), p.TokenCount())
	start := time.Now()

	dot, err := Layout(p, opts)

	hooks.OnLayoutComplete(ctx, len(dot), time.Since(start), err)
	if err == nil {
		r.Logger.Debug("generated DOT", "bytes", len(dot))
	}
	return dot, err
}

// Render lays out a DOT document in the requested format.
func (r *Runner) Render(ctx context.Context, dot string, opts Options) ([]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format)
	start := time.Now()

	data, err := Render(ctx, dot, opts)

	hooks.OnRenderComplete(ctx, opts.Format, len(data), time.Since(start), err)
	return data, err
}
