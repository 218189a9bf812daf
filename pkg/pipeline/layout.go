package pipeline

import (
	"github.com/matzehuels/deptree/pkg/deptree"
	"github.com/matzehuels/deptree/pkg/render/nodelink"
)

// Layout translates a parse into a DOT document.
func Layout(p *deptree.Parse, opts Options) (string, error) {
	return nodelink.ToDOT(p, nodelink.Options{
		LabelIndices:  opts.LabelIndices,
		SentenceRoots: opts.SentenceRoots,
	})
}
