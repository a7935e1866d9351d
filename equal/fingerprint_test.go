package equal_test

import (
	"testing"

	"github.com/on-the-ground/memo_ive_go/equal"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_AgreesWithEqualsOnAcyclicValues(t *testing.T) {
	same := [][2]equal.Value{
		{seqOfInts(1, 2, 3), seqOfInts(1, 2, 3)},
		{
			equal.NewRecord().Set("x", equal.Number(1)).Set("y", equal.Number(2)),
			equal.NewRecord().Set("y", equal.Number(2)).Set("x", equal.Number(1)),
		},
		{
			equal.NewRecord().Set("0", equal.Number(1)).Set("1", equal.Number(2)),
			seqOfInts(1, 2),
		},
		{
			equal.NewMap().Set(equal.Text("k"), seqOfInts(1)),
			equal.NewMap().Set(equal.Text("k"), seqOfInts(1)),
		},
		{equal.Of([]any{1, map[string]any{"a": "b"}}), equal.Of([]any{1, map[string]any{"a": "b"}})},
	}
	for _, p := range same {
		assert.Equal(t, equal.Fingerprint(p[0]), equal.Fingerprint(p[1]))
	}
}

func TestFingerprint_SeparatesDistinctValues(t *testing.T) {
	distinct := [][2]equal.Value{
		{seqOfInts(1, 2, 3), seqOfInts(1, 2)},
		{seqOfInts(1, 2, 3), seqOfInts(1, 2, 4)},
		{equal.Number(1), equal.Text("1")},
		{equal.Null{}, equal.Number(0)},
		{
			equal.NewRecord().Set("x", equal.Number(1)),
			equal.NewRecord().Set("y", equal.Number(1)),
		},
		{
			// Insertion order separates maps even over equal key sets.
			equal.NewMap().Set(equal.Text("a"), equal.Number(1)).Set(equal.Text("b"), equal.Number(2)),
			equal.NewMap().Set(equal.Text("b"), equal.Number(2)).Set(equal.Text("a"), equal.Number(1)),
		},
	}
	for _, p := range distinct {
		assert.NotEqual(t, equal.Fingerprint(p[0]), equal.Fingerprint(p[1]))
	}
}

func TestFingerprint_CyclicGraphsTerminate(t *testing.T) {
	a, b := ring(1, 2, 3), ring(1, 2, 3)
	assert.Equal(t, equal.Fingerprint(a), equal.Fingerprint(b))
	assert.NotEqual(t, equal.Fingerprint(a), equal.Fingerprint(ring(1, 2, 4)))

	// Deterministic across repeated runs on the same graph.
	assert.Equal(t, equal.Fingerprint(a), equal.Fingerprint(a))
}

func TestFingerprint_ReferenceLeaves(t *testing.T) {
	f := equal.NewFn(func() {})
	assert.Equal(t, equal.Fingerprint(f), equal.Fingerprint(f))
	assert.NotEqual(t, equal.Fingerprint(f), equal.Fingerprint(equal.NewFn(func() {})))
}
