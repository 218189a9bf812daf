// Package deptree models a dependency parse as returned by a remote language
// analysis service.
//
// # Overview
//
// A [Parse] is an ordered list of [Sentence] values. Each sentence owns its
// [Token] values and the [Edge] values connecting them. An edge points from a
// governor (head) to a dependent and carries a grammatical relation label
// such as "nsubj" or "det".
//
// Token indices are document-level: the first token of the second sentence
// continues counting where the first sentence stopped. Root tokens are
// attached to a synthetic per-sentence root, expressed as an edge whose
// governor is [RootGovernor].
//
// # Invariants
//
// [Parse.Validate] enforces that each sentence is a forest:
//
//   - every edge endpoint is a token of the same sentence
//   - every token has at most one governor
//   - following governors never loops back
//
// A well-formed sentence has exactly one root; [Sentence.Roots] reports the
// tokens without a governor so callers can check this.
package deptree
