package exercise

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sum returns the sum of xs. An empty slice sums to zero.
func Sum[T constraints.Integer](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// RemoveDuplicates returns the distinct values of xs in order of first occurrence.
func RemoveDuplicates[T comparable](xs []T) []T {
	seen := make(map[T]struct{}, len(xs))
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

// FindMaxMin returns the largest and smallest values of xs, in that order.
func FindMaxMin[T constraints.Ordered](xs []T) (T, T, error) {
	if len(xs) == 0 {
		var zero T
		return zero, zero, fmt.Errorf("max/min of empty sequence: %w", ErrInvalidArgument)
	}
	hi, lo := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x > hi {
			hi = x
		}
		if x < lo {
			lo = x
		}
	}
	return hi, lo, nil
}
