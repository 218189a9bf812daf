// Package pipeline provides the parse → DOT → image pipeline for deptree.
//
// This package composes the analysis client, the graph builder, and the
// layout engine so that every CLI command runs the same stages the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: send the text or URI to the analysis service
//  2. Layout: translate the dependency parse into a DOT document
//  3. Render: lay out the DOT document as SVG, PNG, or PDF
//
// Each stage can be run independently or as part of the complete pipeline.
// Stages run sequentially and the first failure ends the run.
//
// # Usage
//
//	runner := pipeline.NewRunner(rosette.NewClient(key, url, timeout), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Content: "Let's make a graph.",
//	    Format:  "svg",
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(result.Artifact)
//
// Run individual stages:
//
//	p, err := runner.Parse(ctx, opts)
//	dot, err := runner.Layout(ctx, p, opts)
//	img, err := runner.Render(ctx, dot, opts)
package pipeline

import (
	"time"

	"github.com/matzehuels/deptree/pkg/deptree"
	"github.com/matzehuels/deptree/pkg/errors"
	"github.com/matzehuels/deptree/pkg/render/nodelink"
)

// Options contains all configuration for one pipeline run.
type Options struct {
	// Parse options
	Content    string // Inline text to analyze
	ContentURI string // URI of a document to analyze instead of Content
	Language   string // Optional ISO 639-3 override

	// Layout options
	LabelIndices  bool // Append token indices to node labels
	SentenceRoots bool // Draw an S1, S2, ... anchor above each sentence

	// Render options
	Format string // dot, svg, png, or pdf
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Parse is the validated dependency parse returned by the service.
	Parse *deptree.Parse

	// DOT is the generated Graphviz document.
	DOT string

	// Artifact is the rendered output in the requested format.
	Artifact []byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SentenceCount int
	TokenCount    int
	EdgeCount     int
	ParseTime     time.Duration
	LayoutTime    time.Duration
	RenderTime    time.Duration
}

// ValidateForParse checks that exactly one input is given.
func (o *Options) ValidateForParse() error {
	if o.Content != "" && o.ContentURI != "" {
		return errors.New(errors.ErrCodeConfiguration, "content and content URI are mutually exclusive")
	}
	if o.Content == "" && o.ContentURI == "" {
		return errors.New(errors.ErrCodeConfiguration, "no input text provided")
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Format == "" {
		o.Format = nodelink.DefaultFormat
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return nodelink.ValidateFormat(o.Format)
}

// Source reports which kind of input the options carry: "uri" or "content".
func (o *Options) Source() string {
	if o.ContentURI != "" {
		return "uri"
	}
	return "content"
}
