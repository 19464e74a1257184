package constraints

import "golang.org/x/exp/constraints"

// minOf, maxOf, and clamp are the small generic helpers the penalty builder
// reaches for repeatedly when computing fairness ranges and ideal drift —
// kept generic rather than duplicated per numeric type.

func minOf[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxOf[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	return maxOf(lo, minOf(v, hi))
}
