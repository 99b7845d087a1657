package domain

// Coalesce returns the first non-zero value, e.g. a flag, then config, then
// a persisted preference.
func Coalesce[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}

// DerefOr returns the first non-nil pointer's value, or fallback.
func DerefOr[T any](fallback T, ptrs ...*T) T {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
