package squircle

import (
	"math"
	"strconv"
)

// formatShortest formats n with the fewest digits that represent it exactly,
// never using exponent notation.
func formatShortest(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// minNum returns the smaller of a and b. Unlike the built-in min, it returns
// the other operand if one of them is NaN, as IEEE 754's minNum does.
func minNum(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	default:
		return min(a, b)
	}
}

// option is a value that may be absent.
type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) unwrap() T {
	if !opt.isSet {
		panic("option isn't set")
	}
	return opt.value
}
