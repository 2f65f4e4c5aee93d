package vars

// DerefOrZero reads an optional pointer argument.
func DerefOrZero[T any](ptr *T) (ret T) {
	if ptr == nil {
		return
	}
	return *ptr
}
