package memo

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/memo_ive_go/equal"
)

// Comparison decides whether two full argument lists denote the same call.
// It fully replaces the default check; it may inspect any subset of the lists.
type Comparison func(left, right []any) bool

// Entry is one cached call: the argument list it was made with and the result
// it produced. Entries are immutable once created.
type Entry[R any] struct {
	Key   []any
	Value R
}

// ArgsEqual is the default Comparison: same length, and every position deeply
// structurally equal under equal.Equals.
func ArgsEqual(left, right []any) bool {
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if !equal.Equals(equal.Of(left[i]), equal.Of(right[i])) {
			return false
		}
	}
	return true
}

// Memoized wraps one target function with one private, unbounded cache.
//
// NOT thread-safe: instances are designed for a single goroutine. Callers who
// share one must add their own synchronization around Call; an internal lock
// would break recursion through the wrapper.
type Memoized[R any] struct {
	id      string
	fn      func(args ...any) R
	compare Comparison
	entries []Entry[R]
	logger  *zap.Logger
}

// Memoize wraps fn with a cache keyed by deep structural equality of the full
// argument list.
func Memoize[R any](fn func(args ...any) R) *Memoized[R] {
	return MemoizeBy(fn, ArgsEqual)
}

// MemoizeBy wraps fn with a cache keyed by the given Comparison.
func MemoizeBy[R any](fn func(args ...any) R, compare Comparison) *Memoized[R] {
	return &Memoized[R]{
		id:      uuid.New().String(),
		fn:      fn,
		compare: compare,
	}
}

// WithLogger attaches a logger for debug-level hit/miss/clear events.
// Purely observational; returns m for chaining.
func (m *Memoized[R]) WithLogger(logger *zap.Logger) *Memoized[R] {
	m.logger = logger
	return m
}

// Call returns the cached result for an argument list equivalent to args, or
// invokes the target, stores its result at the front of the cache, and
// returns it. A hit never re-invokes the target. Whatever the target does on
// a miss — including panicking — propagates unchanged, and a call that does
// not complete is never recorded.
func (m *Memoized[R]) Call(args ...any) R {
	if i := search(m.entries, m.compare, args); i >= 0 {
		m.debug("memo hit", args)
		return m.entries[i].Value
	}
	m.debug("memo miss", args)
	result := m.fn(args...)
	m.entries = prepend(m.entries, Entry[R]{Key: args, Value: result})
	return result
}

// ClearAll empties the cache.
func (m *Memoized[R]) ClearAll() {
	m.entries = nil
	m.debug("memo cleared", nil)
}

// ClearEntry removes the entry matching args, if any. A no-op on a miss.
func (m *Memoized[R]) ClearEntry(args ...any) {
	if i := search(m.entries, m.compare, args); i >= 0 {
		m.entries = append(m.entries[:i], m.entries[i+1:]...)
		m.debug("memo entry cleared", args)
	}
}

// Cache returns the live entry list, most recently added first.
// Callers must treat it as read-only.
func (m *Memoized[R]) Cache() []Entry[R] {
	return m.entries
}

func (m *Memoized[R]) debug(msg string, args []any) {
	if m.logger == nil {
		return
	}
	m.logger.Debug(msg,
		zap.String("memoId", m.id),
		zap.Int("arity", len(args)),
		zap.Int("entries", len(m.entries)),
	)
}

// search scans front to back for the first entry equivalent to args.
func search[R any](entries []Entry[R], compare Comparison, args []any) int {
	for i, entry := range entries {
		if compare(entry.Key, args) {
			return i
		}
	}
	return -1
}

// prepend inserts entry at the front: fresh keys are the likeliest to repeat,
// so the linear scan meets them first.
func prepend[R any](entries []Entry[R], entry Entry[R]) []Entry[R] {
	return append([]Entry[R]{entry}, entries...)
}
