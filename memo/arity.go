package memo

// Typed wrappers over the variadic core, one per common call shape. Each
// returns the memoized closure alongside its cache handle; inner recursive
// calls must go through the closure for memoization to apply across levels.

// Nullary is the cache handle for a zero-argument function. With no
// discriminating key there is nothing to clear selectively, so it exposes no
// ClearEntry.
type Nullary[O1 any] struct {
	m *Memoized[O1]
}

// ClearAll empties the cache; the next call re-invokes the target.
func (n Nullary[O1]) ClearAll() {
	n.m.ClearAll()
}

// Cache returns the live entry list (at most one entry).
func (n Nullary[O1]) Cache() []Entry[O1] {
	return n.m.Cache()
}

func MemoizeI0O1[O1 any](
	pureFn func() O1,
) (func() O1, Nullary[O1]) {
	m := Memoize(
		func(...any) O1 {
			return pureFn()
		},
	)
	return func() O1 {
		return m.Call()
	}, Nullary[O1]{m: m}
}

func MemoizeI1O1[I1, O1 any](
	pureFn func(I1) O1,
) (func(I1) O1, *Memoized[O1]) {
	m := Memoize(
		func(args ...any) O1 {
			return pureFn(args[0].(I1))
		},
	)
	return func(i1 I1) O1 {
		return m.Call(i1)
	}, m
}

func MemoizeI2O1[I1, I2, O1 any](
	pureFn func(I1, I2) O1,
) (func(I1, I2) O1, *Memoized[O1]) {
	m := Memoize(
		func(args ...any) O1 {
			return pureFn(args[0].(I1), args[1].(I2))
		},
	)
	return func(i1 I1, i2 I2) O1 {
		return m.Call(i1, i2)
	}, m
}

func MemoizeI3O1[I1, I2, I3, O1 any](
	pureFn func(I1, I2, I3) O1,
) (func(I1, I2, I3) O1, *Memoized[O1]) {
	m := Memoize(
		func(args ...any) O1 {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3))
		},
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return m.Call(i1, i2, i3)
	}, m
}

func MemoizeI4O1[I1, I2, I3, I4, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
) (func(I1, I2, I3, I4) O1, *Memoized[O1]) {
	m := Memoize(
		func(args ...any) O1 {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
		},
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return m.Call(i1, i2, i3, i4)
	}, m
}

// Result2 packs the two outputs of a dual-output target for cache storage.
type Result2[O1, O2 any] struct {
	O1 O1
	O2 O2
}

func MemoizeI1O2[I1, O1, O2 any](
	pureFn func(I1) (O1, O2),
) (func(I1) (O1, O2), *Memoized[Result2[O1, O2]]) {
	m := Memoize(
		func(args ...any) Result2[O1, O2] {
			v1, v2 := pureFn(args[0].(I1))
			return Result2[O1, O2]{O1: v1, O2: v2}
		},
	)
	return func(i1 I1) (O1, O2) {
		res := m.Call(i1)
		return res.O1, res.O2
	}, m
}

func MemoizeI2O2[I1, I2, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
) (func(I1, I2) (O1, O2), *Memoized[Result2[O1, O2]]) {
	m := Memoize(
		func(args ...any) Result2[O1, O2] {
			v1, v2 := pureFn(args[0].(I1), args[1].(I2))
			return Result2[O1, O2]{O1: v1, O2: v2}
		},
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := m.Call(i1, i2)
		return res.O1, res.O2
	}, m
}

func MemoizeI3O2[I1, I2, I3, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
) (func(I1, I2, I3) (O1, O2), *Memoized[Result2[O1, O2]]) {
	m := Memoize(
		func(args ...any) Result2[O1, O2] {
			v1, v2 := pureFn(args[0].(I1), args[1].(I2), args[2].(I3))
			return Result2[O1, O2]{O1: v1, O2: v2}
		},
	)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		res := m.Call(i1, i2, i3)
		return res.O1, res.O2
	}, m
}

func MemoizeI4O2[I1, I2, I3, I4, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
) (func(I1, I2, I3, I4) (O1, O2), *Memoized[Result2[O1, O2]]) {
	m := Memoize(
		func(args ...any) Result2[O1, O2] {
			v1, v2 := pureFn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
			return Result2[O1, O2]{O1: v1, O2: v2}
		},
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		res := m.Call(i1, i2, i3, i4)
		return res.O1, res.O2
	}, m
}
