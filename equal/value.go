package equal

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"time"
)

// Value is the closed family of shapes Equals understands.
// The only implementations live in this package; external types enter the
// family through Of or the constructors below.
type Value interface {
	value()
}

type (
	// Number is a numeric leaf.
	Number float64

	// Int is an integer leaf for magnitudes float64 cannot represent exactly.
	// Of produces it beyond ±2^53 so distinguishable 64-bit integers never
	// collapse onto one Number.
	Int int64

	// Uint is the unsigned counterpart of Int for magnitudes beyond int64.
	Uint uint64

	// Text is a textual leaf.
	Text string

	// Bool is a boolean leaf.
	Bool bool

	// Null is the absence leaf. All Null values are equal to each other
	// and to nothing else.
	Null struct{}

	// Pattern is a pattern-matcher leaf, equal when source and flags both match.
	Pattern struct {
		Source string
		Flags  string
	}

	// Instant is a point in time, equal when the underlying instants coincide
	// regardless of location.
	Instant struct {
		at time.Time
	}

	// Fn is a callable leaf. Two Fn values are equal only when they are the
	// same reference; behaviorally identical callables stay distinct.
	Fn struct {
		impl any
		ptr  uintptr
	}

	// Opaque carries a value outside the closed family. Comparable contents
	// compare by ==, everything else by reference identity of the wrapper.
	Opaque struct {
		v any
	}

	// Seq is an ordered, integer-indexed collection.
	Seq struct {
		Items []Value
	}

	// MapEntry is one key→value association of a Map.
	MapEntry struct {
		Key Value
		Val Value
	}

	// Map is an insertion-ordered key→value collection. Keys may be any Value,
	// including composites, and their order is part of the Map's identity.
	Map struct {
		entries []MapEntry
	}

	// Record is an unordered string-keyed bag. Field order never matters.
	Record struct {
		fields map[string]Value
	}
)

func (Number) value()  {}
func (Int) value()     {}
func (Uint) value()    {}
func (Text) value()    {}
func (Bool) value()    {}
func (Null) value()    {}
func (Pattern) value() {}
func (Instant) value() {}
func (*Fn) value()     {}
func (*Opaque) value() {}
func (*Seq) value()    {}
func (*Map) value()    {}
func (*Record) value() {}

// NewInstant wraps t as an Instant leaf.
func NewInstant(t time.Time) Instant {
	return Instant{at: t}
}

// At returns the underlying instant.
func (i Instant) At() time.Time {
	return i.at
}

// NewFn wraps any callable (or anything else meant to compare by reference
// only) as an Fn leaf. Each call yields a distinct reference.
func NewFn(impl any) *Fn {
	return &Fn{impl: impl}
}

// Impl returns the wrapped callable.
func (f *Fn) Impl() any {
	return f.impl
}

// NewSeq builds a sequence from items. The returned Seq may be mutated
// (including into a cycle) before comparison.
func NewSeq(items ...Value) *Seq {
	return &Seq{Items: items}
}

// NewMap builds an empty insertion-ordered map.
func NewMap() *Map {
	return &Map{}
}

// Set appends the association key→val, preserving insertion order.
// Returns m for chaining.
func (m *Map) Set(key, val Value) *Map {
	m.entries = append(m.entries, MapEntry{Key: key, Val: val})
	return m
}

// Len reports the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Entries returns the live entry slice in insertion order.
// Callers must treat it as read-only.
func (m *Map) Entries() []MapEntry {
	return m.entries
}

// NewRecord builds an empty record.
func NewRecord() *Record {
	return &Record{fields: make(map[string]Value)}
}

// Set stores val under key, replacing any previous value. Returns r for chaining.
func (r *Record) Set(key string, val Value) *Record {
	r.fields[key] = val
	return r
}

// Get returns the value stored under key, if any.
func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Len reports the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Keys returns the field names in sorted order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Of lifts a plain Go value into the Value family. Existing Values pass
// through untouched. Numbers, strings, booleans, nil, time.Time, and compiled
// regexps map onto their scalar shapes; slices and arrays of any element type
// become sequences, string-keyed maps become records, and funcs compare by
// identity. A fmt.Stringer is keyed by its rendered string; whatever remains
// becomes an Opaque leaf that compares by == when its type allows it and by
// reference identity otherwise.
//
// Integers within ±2^53 lift to Number so mixed-width arguments agree; beyond
// that they keep exact Int/Uint representation. Func identity is the code
// pointer, so two closures made from the same literal share identity — wrap
// closures that must stay distinct in NewFn.
//
// Of recurses structurally and is therefore meant for acyclic inputs.
// Cyclic graphs should be assembled directly from NewSeq, NewMap, and
// NewRecord, whose nodes carry the reference identity the comparator's
// cycle bookkeeping needs.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null{}
	case Value:
		return x
	case bool:
		return Bool(x)
	case string:
		return Text(x)
	case int:
		return intValue(int64(x))
	case int8:
		return Number(x)
	case int16:
		return Number(x)
	case int32:
		return Number(x)
	case int64:
		return intValue(x)
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return Number(x)
	case uint16:
		return Number(x)
	case uint32:
		return Number(x)
	case uint64:
		return uintValue(x)
	case float32:
		return Number(x)
	case float64:
		return Number(x)
	case time.Time:
		return NewInstant(x)
	case *regexp.Regexp:
		return Pattern{Source: x.String()}
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			items[i] = Of(item)
		}
		return &Seq{Items: items}
	case map[string]any:
		rec := NewRecord()
		for k, val := range x {
			rec.Set(k, Of(val))
		}
		return rec
	case fmt.Stringer:
		return &Opaque{v: x.String()}
	default:
		return ofReflect(x)
	}
}

// maxExactInt is the largest magnitude float64 represents exactly (2^53).
const maxExactInt = int64(1) << 53

func intValue(n int64) Value {
	if -maxExactInt <= n && n <= maxExactInt {
		return Number(n)
	}
	return Int(n)
}

func uintValue(n uint64) Value {
	if n <= uint64(maxExactInt) {
		return Number(n)
	}
	if n <= math.MaxInt64 {
		return Int(n)
	}
	return Uint(n)
}

// ofReflect covers the typed shapes the switch above cannot enumerate.
func ofReflect(v any) Value {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = Of(rv.Index(i).Interface())
		}
		return &Seq{Items: items}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return &Opaque{v: v}
		}
		rec := NewRecord()
		iter := rv.MapRange()
		for iter.Next() {
			rec.Set(iter.Key().String(), Of(iter.Value().Interface()))
		}
		return rec
	case reflect.Func:
		return &Fn{impl: v, ptr: rv.Pointer()}
	default:
		return &Opaque{v: v}
	}
}
