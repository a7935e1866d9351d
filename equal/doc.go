// Package equal provides deep structural equality over a closed set of value shapes.
//
// Equals is not just another comparison helper.
// Equals is a tool that *forces the developer to ask*:
//
//	→ "What does 'the same' mean for this value?"
//	→ "Is sameness about identity, contents, or shape?"
//
// Go's == answers none of these questions for graphs: it compares references,
// panics on uncomparable types, and knows nothing about cycles. Equals answers
// all of them, for a closed family of shapes, and it is total — it never panics
// and it always terminates, even on self-referential graphs.
//
// Features:
//   - A sealed Value sum type with one case per shape: scalars, patterns,
//     instants, callables, sequences, ordered maps, and unordered records.
//   - Cycle-safe recursion via an explicit in-progress reference-pair set.
//   - Of: a bridge that lifts plain Go values into the Value family.
//   - Fingerprint: a structural 64-bit digest, consistent with Equals on
//     acyclic values.
//
// Ordered maps and unordered records deliberately differ: reordering the
// entries of a Map breaks equality, reordering the fields of a Record does not.
// A Record whose keys are exactly "0".."n-1" is array-shaped and compares equal
// to the matching Seq; this cross-shape case is intentional and goes no further.
//
// See equal_test.go for the full behavioral catalogue.
package equal
