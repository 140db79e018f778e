package util

import (
	"golang.org/x/exp/constraints"
)

// Max returns the largest of the supplied values, or the zero value when called without any.
func Max[T constraints.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	max := args[0]
	for _, arg := range args[1:] {
		if arg > max {
			max = arg
		}
	}
	return max
}

// Min returns the smallest of the supplied values, or the zero value when called without any.
func Min[T constraints.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	min := args[0]
	for _, arg := range args[1:] {
		if arg < min {
			min = arg
		}
	}
	return min
}

// ClampToZero returns value, or zero when value is negative.
func ClampToZero[T constraints.Signed](value T) T {
	return Max(value, 0)
}
