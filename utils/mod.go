package utils

// AllDistinct reports whether no element of slice appears twice.
func AllDistinct[T comparable](slice []T) bool {
	_, repeated := FirstRepeat(slice)
	return !repeated
}

// FirstRepeat returns the first element seen for a second time.
func FirstRepeat[T comparable](slice []T) (T, bool) {
	seen := make(map[T]struct{}, len(slice))
	for _, v := range slice {
		if _, ok := seen[v]; ok {
			return v, true
		}
		seen[v] = struct{}{}
	}
	var zero T
	return zero, false
}

// CountDistinct counts the different elements of slice.
func CountDistinct[T comparable](slice []T) int {
	seen := make(map[T]struct{}, len(slice))
	for _, v := range slice {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// CountFunc counts the elements of slice satisfying f.
func CountFunc[T any](slice []T, f func(T) bool) int {
	n := 0
	for _, v := range slice {
		if f(v) {
			n++
		}
	}
	return n
}
