package util

// InsertSlice inserts item(s) T at position pos and returns a new slice - the input slice
// is left untouched so callers may keep aliases into it.
func InsertSlice[T any](arr []T, pos int, element ...T) []T {
	if pos < 0 {
		pos = 0
	}
	if pos > len(arr) {
		pos = len(arr)
	}
	out := make([]T, 0, len(arr)+len(element))
	out = append(out, arr[:pos]...)
	out = append(out, element...)
	out = append(out, arr[pos:]...)

	return out
}
