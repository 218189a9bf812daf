// Package nodelink renders dependency parses as node-link diagrams.
//
// # Overview
//
// Tokens become boxes and dependency relations become labeled arrows from
// governor to dependent. Graphviz handles layout and rendering in one step:
//
//	Parse → ToDOT() → DOT → Render() → SVG/PNG/PDF
//
// # Usage
//
//	dot, err := nodelink.ToDOT(parse, nodelink.Options{LabelIndices: true})
//	if err != nil {
//	    return err
//	}
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # DOT Format
//
// [ToDOT] emits one cluster per sentence (with its border hidden) so that
// multi-sentence input renders as independent trees side by side. Node IDs
// have the form s<sentence>_t<token>. Labels are escaped for DOT's
// double-quoted strings, so quotes and backslashes in token text never break
// the document.
//
// # Options
//
//   - LabelIndices: append the token index to each label, e.g. "make (2)"
//   - SentenceRoots: draw an "S1", "S2", ... anchor above each sentence's root
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and PNG
// rendering. PDF conversion requires librsvg (rsvg-convert).
package nodelink
