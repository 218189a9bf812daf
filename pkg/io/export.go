package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/deptree/pkg/deptree"
)

type document struct {
	Language  string     `json:"language,omitempty"`
	Sentences []sentence `json:"sentences"`
}

type sentence struct {
	Index  int     `json:"index"`
	Tokens []token `json:"tokens"`
	Edges  []edge  `json:"edges"`
}

type token struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// edge indices are pointers so that a missing field is detected on import
// instead of decoding as token 0.
type edge struct {
	Governor  *int   `json:"governor"`
	Dependent *int   `json:"dependent"`
	Relation  string `json:"relation,omitempty"`
}

// WriteJSON encodes a parse as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(p *deptree.Parse, w io.Writer) error {
	out := document{
		Language:  p.Language,
		Sentences: make([]sentence, len(p.Sentences)),
	}

	for i, s := range p.Sentences {
		sd := sentence{
			Index:  s.Index,
			Tokens: make([]token, len(s.Tokens)),
			Edges:  make([]edge, len(s.Edges)),
		}
		for j, t := range s.Tokens {
			sd.Tokens[j] = token{Index: t.Index, Text: t.Text}
		}
		for j, e := range s.Edges {
			gov, dep := e.Governor, e.Dependent
			sd.Edges[j] = edge{Governor: &gov, Dependent: &dep, Relation: e.Relation}
		}
		out.Sentences[i] = sd
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
