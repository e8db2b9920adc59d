package fp

// SideEffect calls action with t and returns t.
func SideEffect[T any](t T, action func(T)) T {
	action(t)
	return t
}

func SideEffectIf[T any](t T, condition bool, action func(T)) T {
	if condition {
		action(t)
	}
	return t
}

func SideEffectWhen[T any](t T, condition func(T) bool, action func(T)) T {
	return SideEffectIf(t, condition(t), action)
}

func SideEffectChoose[T any](t T, condition bool, onTrue, onFalse func(T)) T {
	if condition {
		onTrue(t)
	} else {
		onFalse(t)
	}
	return t
}

// If picks one of two projections of t.
func If[T, R any](t T, condition bool, onTrue, onFalse func(T) R) R {
	if condition {
		return onTrue(t)
	}
	return onFalse(t)
}

// With pipes t through two functions.
func With[T, R, U any](t T, selector func(T) R, resultSelector func(R) U) U {
	return resultSelector(selector(t))
}

// Pair holds two values, produced by zipping.
type Pair[A, B any] struct {
	First  A
	Second B
}

func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}
