package fn

import "golang.org/x/exp/constraints"

// Fold applies f left-associatively over its operands:
//
//	Fold(f, x1, x2, x3, x4) == f(f(f(x1, x2), x3), x4)
//
// At least two operands are required. For a slice use sliceutil.Fold.
func Fold[T any](f func(T, T) T, first, second T, rest ...T) T {
	acc := f(first, second)
	for _, v := range rest {
		acc = f(acc, v)
	}
	return acc
}

// Nest applies f to x repeatedly, depth+1 times in total:
// Nest(f, x, 0) == f(x), Nest(f, x, 2) == f(f(f(x))).
// A negative depth behaves like 0.
func Nest[T any](f func(T) T, x T, depth int) T {
	x = f(x)
	for range depth {
		x = f(x)
	}
	return x
}

func Max[T constraints.Ordered](a, b T, rest ...T) T {
	return Fold(func(x, y T) T { return max(x, y) }, a, b, rest...)
}

func Min[T constraints.Ordered](a, b T, rest ...T) T {
	return Fold(func(x, y T) T { return min(x, y) }, a, b, rest...)
}
