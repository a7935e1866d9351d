package equal_test

import (
	"testing"
	"time"

	"github.com/on-the-ground/memo_ive_go/equal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seqOfInts(ns ...int) *equal.Seq {
	items := make([]equal.Value, len(ns))
	for i, n := range ns {
		items[i] = equal.Number(n)
	}
	return equal.NewSeq(items...)
}

func TestEquals_Sequences(t *testing.T) {
	assert.True(t, equal.Equals(seqOfInts(1, 2, 3), seqOfInts(1, 2, 3)))
	assert.False(t, equal.Equals(seqOfInts(1, 2, 3), seqOfInts(1, 2)))
	assert.False(t, equal.Equals(seqOfInts(1, 2, 3), seqOfInts(1, 2, 4)))

	nested := equal.NewSeq(seqOfInts(1), seqOfInts(2, 3))
	assert.True(t, equal.Equals(nested, equal.NewSeq(seqOfInts(1), seqOfInts(2, 3))))
	assert.False(t, equal.Equals(nested, equal.NewSeq(seqOfInts(1), seqOfInts(2))))
}

func TestEquals_Records_OrderInsensitive(t *testing.T) {
	xy := equal.NewRecord().
		Set("x", equal.Number(1)).
		Set("y", equal.Number(2))
	yx := equal.NewRecord().
		Set("y", equal.Number(2)).
		Set("x", equal.Number(1))
	assert.True(t, equal.Equals(xy, yx))

	bigger := equal.NewRecord().
		Set("x", equal.Number(1)).
		Set("y", equal.Number(2)).
		Set("z", equal.Number(3))
	assert.False(t, equal.Equals(xy, bigger))

	other := equal.NewRecord().
		Set("x", equal.Number(1)).
		Set("z", equal.Number(2))
	assert.False(t, equal.Equals(xy, other))
}

func TestEquals_Maps_OrderSensitive(t *testing.T) {
	ab := equal.NewMap().
		Set(equal.Text("a"), equal.Number(1)).
		Set(equal.Text("b"), equal.Number(2))
	ab2 := equal.NewMap().
		Set(equal.Text("a"), equal.Number(1)).
		Set(equal.Text("b"), equal.Number(2))
	ba := equal.NewMap().
		Set(equal.Text("b"), equal.Number(2)).
		Set(equal.Text("a"), equal.Number(1))

	assert.True(t, equal.Equals(ab, ab2))
	// Same key set, different insertion order: not the same map.
	assert.False(t, equal.Equals(ab, ba))
	assert.False(t, equal.Equals(ab, equal.NewMap().Set(equal.Text("a"), equal.Number(1))))
}

func TestEquals_Maps_ExactKeyLookup(t *testing.T) {
	shared := seqOfInts(1)
	left := equal.NewMap().Set(shared, equal.Text("v"))
	right := equal.NewMap().Set(shared, equal.Text("v"))
	assert.True(t, equal.Equals(left, right))

	// Structurally equal but distinct composite keys: the key sequences match,
	// but value lookup is by reference, so the maps differ.
	detached := equal.NewMap().Set(seqOfInts(1), equal.Text("v"))
	assert.False(t, equal.Equals(left, detached))
}

func TestEquals_ShapeMismatch(t *testing.T) {
	assert.False(t, equal.Equals(seqOfInts(1), equal.NewMap().Set(equal.Number(0), equal.Number(1))))
	assert.False(t, equal.Equals(equal.Number(1), equal.Text("1")))
	assert.False(t, equal.Equals(equal.Null{}, equal.Number(0)))
	assert.False(t, equal.Equals(equal.Bool(false), equal.Null{}))
}

func TestEquals_Scalars(t *testing.T) {
	assert.True(t, equal.Equals(equal.Number(1.5), equal.Number(1.5)))
	assert.False(t, equal.Equals(equal.Number(1.5), equal.Number(2.5)))
	assert.True(t, equal.Equals(equal.Text("go"), equal.Text("go")))
	assert.True(t, equal.Equals(equal.Bool(true), equal.Bool(true)))
	assert.False(t, equal.Equals(equal.Bool(true), equal.Bool(false)))
	assert.True(t, equal.Equals(equal.Null{}, equal.Null{}))

	assert.True(t, equal.Equals(
		equal.Pattern{Source: "a+", Flags: "i"},
		equal.Pattern{Source: "a+", Flags: "i"},
	))
	assert.False(t, equal.Equals(
		equal.Pattern{Source: "a+", Flags: "i"},
		equal.Pattern{Source: "a+", Flags: ""},
	))
}

func TestEquals_Instants_ByInstant(t *testing.T) {
	base := time.Unix(1700000000, 42)
	elsewhere := base.In(time.FixedZone("elsewhere", 9*60*60))
	assert.True(t, equal.Equals(equal.NewInstant(base), equal.NewInstant(elsewhere)))
	assert.False(t, equal.Equals(
		equal.NewInstant(base),
		equal.NewInstant(base.Add(time.Nanosecond)),
	))
}

func TestEquals_Fns_ByReference(t *testing.T) {
	double := func(n int) int { return n * 2 }
	f := equal.NewFn(double)
	assert.True(t, equal.Equals(f, f))
	// Same behavior, different reference: never equal.
	assert.False(t, equal.Equals(f, equal.NewFn(double)))
}

func TestEquals_ArrayShapedRecords(t *testing.T) {
	rec := equal.NewRecord().
		Set("0", equal.Number(1)).
		Set("1", equal.Number(2))
	seq := seqOfInts(1, 2)

	assert.True(t, equal.Equals(rec, seq))
	assert.True(t, equal.Equals(seq, rec))

	sparse := equal.NewRecord().
		Set("0", equal.Number(1)).
		Set("2", equal.Number(2))
	assert.False(t, equal.Equals(sparse, seq))

	mismatched := equal.NewRecord().
		Set("0", equal.Number(1)).
		Set("1", equal.Number(9))
	assert.False(t, equal.Equals(mismatched, seq))

	// Ordered maps never take part in the cross-shape rule.
	asMap := equal.NewMap().
		Set(equal.Number(0), equal.Number(1)).
		Set(equal.Number(1), equal.Number(2))
	assert.False(t, equal.Equals(asMap, seq))
}

// ring builds a cyclic linked list of records: value/next, last node pointing
// back to the first.
func ring(values ...int) *equal.Record {
	nodes := make([]*equal.Record, len(values))
	for i, v := range values {
		nodes[i] = equal.NewRecord().Set("value", equal.Number(v))
	}
	for i := range nodes {
		nodes[i].Set("next", nodes[(i+1)%len(nodes)])
	}
	return nodes[0]
}

func TestEquals_CyclicRings(t *testing.T) {
	assert.True(t, equal.Equals(ring(1, 2, 3), ring(1, 2, 3)))
	assert.False(t, equal.Equals(ring(1, 2, 3), ring(1, 2, 4)))
}

func TestEquals_CyclicVersusAcyclic(t *testing.T) {
	// Same node shape and values, but the chain ends instead of looping.
	chain := equal.NewRecord().Set("value", equal.Number(1))
	chain.Set("next", equal.NewRecord().
		Set("value", equal.Number(2)).
		Set("next", equal.NewRecord().
			Set("value", equal.Number(3)).
			Set("next", equal.Null{})))
	assert.False(t, equal.Equals(ring(1, 2, 3), chain))
	assert.False(t, equal.Equals(chain, ring(1, 2, 3)))
}

func TestEquals_SelfLoop(t *testing.T) {
	loop := equal.NewSeq()
	loop.Items = append(loop.Items, loop)
	other := equal.NewSeq()
	other.Items = append(other.Items, other)
	assert.True(t, equal.Equals(loop, other))

	// Loops of different period are indistinguishable to the comparator:
	// every branch that could tell them apart re-enters the cycle.
	two := equal.NewSeq()
	twoBack := equal.NewSeq(two)
	two.Items = append(two.Items, twoBack)
	assert.True(t, equal.Equals(loop, two))
}

func TestEquals_Reflexivity(t *testing.T) {
	cyclic := ring(1, 2)
	values := []equal.Value{
		equal.Number(0),
		equal.Text(""),
		equal.Bool(false),
		equal.Null{},
		equal.Pattern{Source: ".*"},
		equal.NewInstant(time.Now()),
		equal.NewFn(func() {}),
		seqOfInts(1, 2, 3),
		equal.NewMap().Set(equal.Text("k"), equal.Number(1)),
		equal.NewRecord().Set("k", equal.Number(1)),
		cyclic,
	}
	for _, v := range values {
		assert.True(t, equal.Equals(v, v))
	}
}

func TestEquals_Symmetry(t *testing.T) {
	pairs := [][2]equal.Value{
		{seqOfInts(1, 2), seqOfInts(1, 2)},
		{seqOfInts(1, 2), seqOfInts(2, 1)},
		{equal.NewRecord().Set("a", equal.Number(1)), equal.NewRecord().Set("a", equal.Number(1))},
		{equal.NewRecord().Set("a", equal.Number(1)), equal.NewRecord().Set("b", equal.Number(1))},
		{ring(1, 2), ring(1, 2)},
		{ring(1, 2), ring(2, 1)},
		{equal.Number(1), equal.Text("1")},
	}
	for _, p := range pairs {
		assert.Equal(t, equal.Equals(p[0], p[1]), equal.Equals(p[1], p[0]))
	}
}

func TestEquals_DeepRings_NoStackExhaustion(t *testing.T) {
	const n = 100_000
	a, b := ring(make([]int, n)...), ring(make([]int, n)...)
	require.True(t, equal.Equals(a, b))
}
