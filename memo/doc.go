// Package memo turns pure, deterministic functions into cached versions of themselves.
//
// Memoize is not just a performance trick.
// Memoize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "What makes two calls to it the same call?"
//
// The second question has a pluggable answer: by default two argument lists
// are the same call when they are deeply, structurally equal (see the equal
// package), but a custom Comparison can narrow that to any subset or
// transformation of the arguments — partial-key memoization is one predicate
// away.
//
// Each memoized instance owns its cache outright: an unbounded entry list with
// the most recent miss at the front, searched linearly, cleared one entry or
// all at once. Nothing is shared across instances, nothing expires on its own,
// and nothing survives the instance.
//
// Calls are not synchronized internally. That is deliberate twice over: the
// cache is meant for single-goroutine use (guard it yourself if you must
// share), and holding a lock across the wrapped function would deadlock the
// recursive pattern below, which is the whole point for dynamic programming:
//
//	var fib func(int) int
//	cached, _ := memo.MemoizeI1O1(func(n int) int {
//		if n <= 1 {
//			return n
//		}
//		return fib(n-1) + fib(n-2)
//	})
//	fib = cached // inner calls must go through the wrapper
//
// A function that recurses on its own unwrapped identifier bypasses the cache
// on every inner call; the wrapper must be the binding the body uses.
//
// WARNING: Do not memoize impure functions (those depending on time, I/O, etc).
package memo
