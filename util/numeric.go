package util

import "regexp"

var numericPattern = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)$`)

// IsNumeric reports whether s is an integer or decimal literal over its entire length.
func IsNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Min[T Numeric](x, y T) T {
	if x < y {
		return x
	}
	return y
}
