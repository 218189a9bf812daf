package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/deptree/pkg/deptree"
	"github.com/matzehuels/deptree/pkg/errors"
)

// ReadJSON decodes a JSON parse from r and validates it.
//
// The input must be a JSON object with a "sentences" array; see the package
// documentation for the full layout. Each token's Sentence field is filled
// from the enclosing sentence's index.
//
// ReadJSON returns a RESPONSE_FORMAT_ERROR if:
//   - The JSON is malformed or has no "sentences" key
//   - An edge lacks its governor or dependent
//   - Two sentences share an index
//   - An edge references a token outside its sentence
//   - A token has more than one governor, or governors form a cycle
//
// The validation cause wraps the deptree sentinel errors, so errors.Is
// works against them. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*deptree.Parse, error) {
	var data struct {
		Language  string      `json:"language"`
		Sentences *[]sentence `json:"sentences"`
	}
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeResponseFormat, err, "decode parse")
	}
	if data.Sentences == nil {
		return nil, errors.New(errors.ErrCodeResponseFormat, "decode parse: missing \"sentences\"")
	}

	p := &deptree.Parse{
		Language:  data.Language,
		Sentences: make([]deptree.Sentence, len(*data.Sentences)),
	}
	for i, s := range *data.Sentences {
		ps := deptree.Sentence{
			Index:  s.Index,
			Tokens: make([]deptree.Token, len(s.Tokens)),
			Edges:  make([]deptree.Edge, len(s.Edges)),
		}
		for j, t := range s.Tokens {
			ps.Tokens[j] = deptree.Token{Index: t.Index, Text: t.Text, Sentence: s.Index}
		}
		for j, e := range s.Edges {
			if e.Governor == nil || e.Dependent == nil {
				return nil, errors.New(errors.ErrCodeResponseFormat,
					"decode parse: sentence %d edge %d is missing governor or dependent", s.Index, j)
			}
			ps.Edges[j] = deptree.Edge{Governor: *e.Governor, Dependent: *e.Dependent, Relation: e.Relation}
		}
		p.Sentences[i] = ps
	}

	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeResponseFormat, err, "invalid parse")
	}
	return p, nil
}

// ImportJSON reads a JSON file at path and returns the decoded parse.
//
// A file that cannot be opened is a CONFIGURATION_ERROR, since the path came
// from the user. Decoding and validation failures are reported as by
// [ReadJSON].
func ImportJSON(path string) (*deptree.Parse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfiguration, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
