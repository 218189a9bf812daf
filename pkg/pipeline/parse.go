package pipeline

import (
	"context"

	"github.com/matzehuels/deptree/pkg/deptree"
	"github.com/matzehuels/deptree/pkg/integrations/rosette"
)

// Analyzer performs the remote dependency analysis.
// [rosette.Client] is the production implementation.
type Analyzer interface {
	SyntaxDependencies(ctx context.Context, req rosette.Request) (*deptree.Parse, error)
}

// Parse sends the input described by opts to the analyzer.
func Parse(ctx context.Context, a Analyzer, opts Options) (*deptree.Parse, error) {
	return a.SyntaxDependencies(ctx, rosette.Request{
		Content:    opts.Content,
		ContentURI: opts.ContentURI,
		Language:   opts.Language,
	})
}
