package pipeline

import (
	"context"

	"github.com/matzehuels/deptree/pkg/render/nodelink"
)

// Render lays out a DOT document in the format named by opts.
func Render(ctx context.Context, dot string, opts Options) ([]byte, error) {
	return nodelink.Render(ctx, dot, opts.Format)
}
