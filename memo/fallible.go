package memo

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MemoizedE is the fallible counterpart of Memoized: the target returns
// (R, error), and an errored call is never recorded — the error propagates
// unchanged and the next equivalent call invokes the target again.
//
// NOT thread-safe, for the same reasons as Memoized.
type MemoizedE[R any] struct {
	id      string
	fn      func(args ...any) (R, error)
	compare Comparison
	entries []Entry[R]
	logger  *zap.Logger
}

// MemoizeE wraps a fallible fn with a cache keyed by deep structural equality
// of the full argument list. Only successful results are cached.
func MemoizeE[R any](fn func(args ...any) (R, error)) *MemoizedE[R] {
	return MemoizeEBy(fn, ArgsEqual)
}

// MemoizeEBy wraps a fallible fn with a cache keyed by the given Comparison.
func MemoizeEBy[R any](fn func(args ...any) (R, error), compare Comparison) *MemoizedE[R] {
	return &MemoizedE[R]{
		id:      uuid.New().String(),
		fn:      fn,
		compare: compare,
	}
}

// WithLogger attaches a logger for debug-level hit/miss/clear events.
func (m *MemoizedE[R]) WithLogger(logger *zap.Logger) *MemoizedE[R] {
	m.logger = logger
	return m
}

// Call returns the cached result for args, or invokes the target. On error
// the result is returned as-is and nothing is stored.
func (m *MemoizedE[R]) Call(args ...any) (R, error) {
	if i := search(m.entries, m.compare, args); i >= 0 {
		m.debug("memo hit", args)
		return m.entries[i].Value, nil
	}
	m.debug("memo miss", args)
	result, err := m.fn(args...)
	if err != nil {
		return result, err
	}
	m.entries = prepend(m.entries, Entry[R]{Key: args, Value: result})
	return result, nil
}

// ClearAll empties the cache.
func (m *MemoizedE[R]) ClearAll() {
	m.entries = nil
	m.debug("memo cleared", nil)
}

// ClearEntry removes the entry matching args, if any. A no-op on a miss.
func (m *MemoizedE[R]) ClearEntry(args ...any) {
	if i := search(m.entries, m.compare, args); i >= 0 {
		m.entries = append(m.entries[:i], m.entries[i+1:]...)
		m.debug("memo entry cleared", args)
	}
}

// Cache returns the live entry list, most recently added first.
// Callers must treat it as read-only.
func (m *MemoizedE[R]) Cache() []Entry[R] {
	return m.entries
}

func (m *MemoizedE[R]) debug(msg string, args []any) {
	if m.logger == nil {
		return
	}
	m.logger.Debug(msg,
		zap.String("memoId", m.id),
		zap.Int("arity", len(args)),
		zap.Int("entries", len(m.entries)),
	)
}
