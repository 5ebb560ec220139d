// SPDX-License-Identifier: MIT

package geom

// FloorDiv returns floor(a / b), rounding toward negative infinity.
// FloorDiv(-7, 2) == -4 and FloorDiv(-1, 2) == -1, whereas -7/2 == -3 in Go.
// Panics on b == 0.
func FloorDiv(a, b int) int {
	q := a / b
	// truncation moved the quotient up whenever the signs differ and
	// the division was inexact
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Abs returns |v|.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Clamp limits |v| to limit while keeping the sign of v.
// A negative limit is treated as zero.
func Clamp(v, limit int) int {
	if limit < 0 {
		limit = 0
	}
	switch {
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	default:
		return v
	}
}

// Toward returns -1 when away is true and +1 otherwise. It expresses the
// "pull back toward the center" sign used by the peak correction.
func Toward(away bool) int {
	if away {
		return -1
	}
	return 1
}
