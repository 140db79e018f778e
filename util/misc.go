package util

func IfThenElse[T any](condition bool, a T, b T) T {
	if condition {
		return a
	}
	return b
}

// Concat returns a newly allocated slice holding the contents of a followed by b.
func Concat[T any](a []T, b []T) []T {
	result := make([]T, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

// ReadOnlyView returns s with its capacity capped at its length so that appending to the
// view always reallocates instead of writing into the owner's storage.
func ReadOnlyView[T any](s []T, offset int, length int) []T {
	return s[offset : offset+length : offset+length]
}
