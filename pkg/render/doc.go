// Package render turns dependency parses into images.
//
// # Overview
//
// The [nodelink] subpackage holds the core translation from a
// [deptree.Parse] to Graphviz DOT, plus in-process layout of that DOT to SVG
// or PNG via go-graphviz. This package provides format conversion that
// Graphviz cannot do on its own:
//
//	dot, err := nodelink.ToDOT(parse, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [ToPDF] shells out to rsvg-convert (from librsvg).
//
// [nodelink]: github.com/matzehuels/deptree/pkg/render/nodelink
// [deptree.Parse]: github.com/matzehuels/deptree/pkg/deptree.Parse
package render
