package deptree

import (
	"errors"
	"fmt"
)

// RootGovernor is the governor index used for tokens attached to the
// synthetic per-sentence root rather than to another token.
const RootGovernor = -1

// RootRelation is the relation label conventionally used for root edges.
const RootRelation = "root"

var (
	// ErrUnknownToken is returned by [Parse.Validate] when an edge references a
	// token index that does not belong to the edge's sentence.
	ErrUnknownToken = errors.New("edge references unknown token")

	// ErrDuplicateToken is returned by [Parse.Validate] when two tokens in the
	// same sentence share an index.
	ErrDuplicateToken = errors.New("duplicate token index")

	// ErrDuplicateSentence is returned by [Parse.Validate] when two sentences
	// share an index. Sentence indices key rendered node ids.
	ErrDuplicateSentence = errors.New("duplicate sentence index")

	// ErrMultipleGovernors is returned by [Parse.Validate] when a token is the
	// dependent of more than one edge.
	ErrMultipleGovernors = errors.New("token has more than one governor")

	// ErrCycle is returned by [Parse.Validate] when following governors from a
	// token leads back to the same token.
	ErrCycle = errors.New("dependency edges form a cycle")
)

// Token is a single word or punctuation mark of the analyzed text.
type Token struct {
	Index    int    // Document-level position, 0-based
	Text     string // Surface form
	Sentence int    // Index of the owning sentence, 0-based
}

// Edge is a labeled dependency relation from a governor to a dependent.
// Governor is [RootGovernor] for root tokens.
type Edge struct {
	Governor  int
	Dependent int
	Relation  string // May be empty when the service omitted it
}

// IsRoot reports whether the edge attaches its dependent to the sentence root.
func (e Edge) IsRoot() bool { return e.Governor == RootGovernor }

// Sentence is an ordered run of tokens and the dependency edges among them.
type Sentence struct {
	Index  int
	Tokens []Token
	Edges  []Edge
}

// Token returns the token with the given document-level index.
func (s Sentence) Token(index int) (Token, bool) {
	for _, t := range s.Tokens {
		if t.Index == index {
			return t, true
		}
	}
	return Token{}, false
}

// Roots returns the tokens that have no governor within the sentence, in
// token order. For a well-formed parse this is exactly one token.
func (s Sentence) Roots() []Token {
	governed := make(map[int]bool, len(s.Edges))
	for _, e := range s.Edges {
		if !e.IsRoot() {
			governed[e.Dependent] = true
		}
	}
	var roots []Token
	for _, t := range s.Tokens {
		if !governed[t.Index] {
			roots = append(roots, t)
		}
	}
	return roots
}

// Parse is the dependency analysis of a whole document.
// The zero value is an empty parse.
type Parse struct {
	Language  string // Language reported by the service (may be empty)
	Sentences []Sentence
}

// TokenCount returns the number of tokens across all sentences.
func (p *Parse) TokenCount() int {
	n := 0
	for _, s := range p.Sentences {
		n += len(s.Tokens)
	}
	return n
}

// EdgeCount returns the number of token-to-token edges across all sentences.
// Root edges are not counted.
func (p *Parse) EdgeCount() int {
	n := 0
	for _, s := range p.Sentences {
		for _, e := range s.Edges {
			if !e.IsRoot() {
				n++
			}
		}
	}
	return n
}

// Validate checks that sentence indices are unique and that every sentence
// forms a forest: edge endpoints belong to the sentence, each token has at
// most one governor, and governor chains never loop. Errors wrap one of the
// package sentinels.
func (p *Parse) Validate() error {
	seen := make(map[int]bool, len(p.Sentences))
	for _, s := range p.Sentences {
		if seen[s.Index] {
			return fmt.Errorf("%w: %d", ErrDuplicateSentence, s.Index)
		}
		seen[s.Index] = true
		if err := s.validate(); err != nil {
			return fmt.Errorf("sentence %d: %w", s.Index, err)
		}
	}
	return nil
}

func (s Sentence) validate() error {
	known := make(map[int]bool, len(s.Tokens))
	for _, t := range s.Tokens {
		if known[t.Index] {
			return fmt.Errorf("%w: %d", ErrDuplicateToken, t.Index)
		}
		known[t.Index] = true
	}

	governor := make(map[int]int, len(s.Edges))
	for _, e := range s.Edges {
		if !known[e.Dependent] {
			return fmt.Errorf("%w: dependent %d", ErrUnknownToken, e.Dependent)
		}
		if !e.IsRoot() && !known[e.Governor] {
			return fmt.Errorf("%w: governor %d", ErrUnknownToken, e.Governor)
		}
		if _, dup := governor[e.Dependent]; dup {
			return fmt.Errorf("%w: %d", ErrMultipleGovernors, e.Dependent)
		}
		governor[e.Dependent] = e.Governor
	}

	for _, t := range s.Tokens {
		cur := t.Index
		for steps := 0; ; steps++ {
			g, ok := governor[cur]
			if !ok || g == RootGovernor {
				break
			}
			if steps >= len(s.Tokens) {
				return fmt.Errorf("%w: through token %d", ErrCycle, t.Index)
			}
			cur = g
		}
	}
	return nil
}
