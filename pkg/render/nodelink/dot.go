package nodelink

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/deptree/pkg/deptree"
	"github.com/matzehuels/deptree/pkg/errors"
)

// Options configures DOT generation.
type Options struct {
	// LabelIndices appends the token index to each node label ("word (3)")
	// to show the original token order.
	LabelIndices bool

	// SentenceRoots adds a synthetic "S1", "S2", ... node per sentence with an
	// edge to each root token. When false, root tokens have no incoming edge.
	SentenceRoots bool
}

const header = `digraph G {
  edge [dir="forward", arrowhead="open", arrowsize=0.5];
  node [shape="box", height=0];
`

// ToDOT converts a dependency parse to Graphviz DOT format.
//
// Each sentence becomes its own cluster so that multi-sentence input renders
// as separate trees in one image. Node identifiers combine the sentence and
// token index, so repeated words never collide. Edges point from governor to
// dependent and are labeled with the relation.
//
// ToDOT has no side effects and returns byte-identical output for the same
// input. It fails with an ENCODING_ERROR if token text or a relation is not
// valid UTF-8.
func ToDOT(p *deptree.Parse, opts Options) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(header)

	for _, s := range p.Sentences {
		if len(s.Tokens) == 0 {
			continue
		}
		if err := writeSentence(&buf, s, opts); err != nil {
			return "", err
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func writeSentence(buf *bytes.Buffer, s deptree.Sentence, opts Options) error {
	fmt.Fprintf(buf, "\n  subgraph cluster_s%d {\n", s.Index)
	buf.WriteString("    peripheries=0;\n")

	if opts.SentenceRoots {
		fmt.Fprintf(buf, "    %s [label=\"S%d\"];\n", rootID(s.Index), s.Index+1)
	}
	for _, t := range s.Tokens {
		label, err := fmtLabel(t, opts.LabelIndices)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "    %s [label=\"%s\"];\n", nodeID(s.Index, t.Index), label)
	}

	for _, e := range s.Edges {
		if e.IsRoot() && !opts.SentenceRoots {
			continue
		}
		rel, err := escape(e.Relation)
		if err != nil {
			return errors.Wrap(errors.ErrCodeEncoding, err, "relation of token %d in sentence %d", e.Dependent, s.Index)
		}
		from := rootID(s.Index)
		if !e.IsRoot() {
			from = nodeID(s.Index, e.Governor)
		}
		fmt.Fprintf(buf, "    %s -> %s [label=\"%s\"];\n", from, nodeID(s.Index, e.Dependent), rel)
	}

	buf.WriteString("  }\n")
	return nil
}

func nodeID(sentence, token int) string {
	return fmt.Sprintf("s%d_t%d", sentence, token)
}

func rootID(sentence int) string {
	return fmt.Sprintf("s%d_root", sentence)
}

func fmtLabel(t deptree.Token, withIndex bool) (string, error) {
	text, err := escape(t.Text)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeEncoding, err, "token %d in sentence %d", t.Index, t.Sentence)
	}
	if withIndex {
		return fmt.Sprintf("%s (%d)", text, t.Index), nil
	}
	return text, nil
}

var errInvalidUTF8 = stderrors.New("text is not valid UTF-8")

var dotEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", "",
)

// escape makes s safe inside a double-quoted DOT string.
// Graphviz does not understand Go's \u and \x escapes, so %q is not an option.
func escape(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", errInvalidUTF8
	}
	return dotEscaper.Replace(s), nil
}
