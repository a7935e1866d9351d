package equal

import (
	"reflect"
	"strconv"
)

// refPair is one left/right pair of composite references currently being
// compared. The dynamic types involved are all pointers, so pairs are
// comparable and identity-based.
type refPair struct {
	left  Value
	right Value
}

// inProgress tracks the reference pairs on the active comparison path.
// It lives for a single top-level Equals call and is never shared.
type inProgress map[refPair]struct{}

// Equals reports whether left and right are structurally equal. It is total:
// it never panics, and it terminates on arbitrary graphs, cyclic ones included.
//
// Scalars compare by value, callables and opaque non-comparable values by
// reference, sequences element-wise in order, Maps entry-wise in insertion
// order, Records field-wise regardless of order. A pair of composites already
// under comparison on the current path is optimistically assumed equal, which
// is what breaks cycles: any genuine mismatch is still found by a sibling
// branch that does not re-enter the loop.
func Equals(left, right Value) bool {
	return eq(left, right, make(inProgress))
}

func eq(left, right Value, seen inProgress) bool {
	switch l := left.(type) {
	case nil:
		return right == nil
	case Null:
		_, ok := right.(Null)
		return ok
	case Number:
		r, ok := right.(Number)
		return ok && l == r
	case Int:
		r, ok := right.(Int)
		return ok && l == r
	case Uint:
		r, ok := right.(Uint)
		return ok && l == r
	case Text:
		r, ok := right.(Text)
		return ok && l == r
	case Bool:
		r, ok := right.(Bool)
		return ok && l == r
	case Pattern:
		r, ok := right.(Pattern)
		return ok && l == r
	case Instant:
		r, ok := right.(Instant)
		return ok && l.at.Equal(r.at)
	case *Fn:
		r, ok := right.(*Fn)
		return ok && sameFn(l, r)
	case *Opaque:
		r, ok := right.(*Opaque)
		return ok && eqOpaques(l, r)
	case *Seq:
		switch r := right.(type) {
		case *Seq:
			return eqSeqs(l, r, seen)
		case *Record:
			return eqRecordSeq(r, l, seen)
		default:
			return false
		}
	case *Map:
		r, ok := right.(*Map)
		return ok && eqMaps(l, r, seen)
	case *Record:
		switch r := right.(type) {
		case *Record:
			return eqRecords(l, r, seen)
		case *Seq:
			return eqRecordSeq(l, r, seen)
		default:
			return false
		}
	default:
		return false
	}
}

// sameFn is reference identity: the same wrapper, or two lifts of the same
// function value (Of records its code pointer).
func sameFn(l, r *Fn) bool {
	if l == r {
		return true
	}
	if l == nil || r == nil {
		return false
	}
	return l.ptr != 0 && l.ptr == r.ptr
}

func eqOpaques(l, r *Opaque) bool {
	if l == r {
		return true
	}
	if l.v == nil || r.v == nil {
		return l.v == r.v
	}
	lt, rt := reflect.TypeOf(l.v), reflect.TypeOf(r.v)
	if lt != rt || !lt.Comparable() {
		// Uncomparable contents fall back to wrapper identity, already ruled out.
		return false
	}
	return l.v == r.v
}

func eqSeqs(l, r *Seq, seen inProgress) bool {
	if l == r {
		return true
	}
	if l == nil || r == nil {
		return false
	}
	if len(l.Items) != len(r.Items) {
		return false
	}
	pair := refPair{left: l, right: r}
	if _, active := seen[pair]; active {
		return true
	}
	seen[pair] = struct{}{}
	defer delete(seen, pair)
	for i := range l.Items {
		if !eq(l.Items[i], r.Items[i], seen) {
			return false
		}
	}
	return true
}

func eqMaps(l, r *Map, seen inProgress) bool {
	if l == r {
		return true
	}
	if l == nil || r == nil {
		return false
	}
	if len(l.entries) != len(r.entries) {
		return false
	}
	pair := refPair{left: l, right: r}
	if _, active := seen[pair]; active {
		return true
	}
	seen[pair] = struct{}{}
	defer delete(seen, pair)
	// Key order is part of a Map's identity: the key sequences must match
	// position by position, not merely as sets.
	for i := range l.entries {
		if !eq(l.entries[i].Key, r.entries[i].Key, seen) {
			return false
		}
	}
	for _, entry := range l.entries {
		val, ok := lookupExact(r, entry.Key)
		if !ok || !eq(entry.Val, val, seen) {
			return false
		}
	}
	return true
}

// lookupExact finds the value stored in m under exactly key: scalars match by
// value, composites and callables by reference. Structural equivalence is
// deliberately not enough here.
func lookupExact(m *Map, key Value) (Value, bool) {
	for _, entry := range m.entries {
		if sameKey(entry.Key, key) {
			return entry.Val, true
		}
	}
	return nil, false
}

func sameKey(a, b Value) bool {
	switch l := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Number:
		r, ok := b.(Number)
		return ok && l == r
	case Int:
		r, ok := b.(Int)
		return ok && l == r
	case Uint:
		r, ok := b.(Uint)
		return ok && l == r
	case Text:
		r, ok := b.(Text)
		return ok && l == r
	case Bool:
		r, ok := b.(Bool)
		return ok && l == r
	case Pattern:
		r, ok := b.(Pattern)
		return ok && l == r
	case Instant:
		r, ok := b.(Instant)
		return ok && l.at.Equal(r.at)
	case *Fn:
		r, ok := b.(*Fn)
		return ok && sameFn(l, r)
	case *Opaque:
		r, ok := b.(*Opaque)
		return ok && eqOpaques(l, r)
	case *Seq:
		r, ok := b.(*Seq)
		return ok && l == r
	case *Map:
		r, ok := b.(*Map)
		return ok && l == r
	case *Record:
		r, ok := b.(*Record)
		return ok && l == r
	default:
		return false
	}
}

func eqRecords(l, r *Record, seen inProgress) bool {
	if l == r {
		return true
	}
	if l == nil || r == nil {
		return false
	}
	if len(l.fields) != len(r.fields) {
		return false
	}
	pair := refPair{left: l, right: r}
	if _, active := seen[pair]; active {
		return true
	}
	seen[pair] = struct{}{}
	defer delete(seen, pair)
	lk, rk := l.Keys(), r.Keys()
	for i := range lk {
		if lk[i] != rk[i] {
			return false
		}
	}
	for _, k := range lk {
		if !eq(l.fields[k], r.fields[k], seen) {
			return false
		}
	}
	return true
}

// arrayShaped reports whether rec's keys are exactly the natural indices
// "0".."n-1". Such records are interchangeable with sequences.
func arrayShaped(rec *Record) bool {
	for i := 0; i < len(rec.fields); i++ {
		if _, ok := rec.fields[strconv.Itoa(i)]; !ok {
			return false
		}
	}
	return true
}

// sequenceOf returns an array-shaped record's values in index order.
func sequenceOf(rec *Record) []Value {
	items := make([]Value, len(rec.fields))
	for i := range items {
		items[i] = rec.fields[strconv.Itoa(i)]
	}
	return items
}

// eqRecordSeq handles the one sanctioned cross-shape case: a record whose
// keys are exactly the natural indices "0".."n-1" is array-shaped and may
// equal the matching sequence.
func eqRecordSeq(rec *Record, seq *Seq, seen inProgress) bool {
	if rec == nil || seq == nil {
		return false
	}
	if len(rec.fields) != len(seq.Items) {
		return false
	}
	pair := refPair{left: rec, right: seq}
	if _, active := seen[pair]; active {
		return true
	}
	seen[pair] = struct{}{}
	defer delete(seen, pair)
	for i := range seq.Items {
		val, ok := rec.fields[strconv.Itoa(i)]
		if !ok || !eq(val, seq.Items[i], seen) {
			return false
		}
	}
	return true
}
