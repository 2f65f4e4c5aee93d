package vars

// FirstNonZero picks the first non-zero value, for layering flag,
// config and default values.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
