package configs

import (
	"errors"
)

// First reads the value at path from the highest precedence config
// file defining it, or the zero value when none does.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
