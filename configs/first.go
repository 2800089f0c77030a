package configs

import "errors"

// First returns the value at path from the first file defining it, or the
// zero value.
func First[T any](loader Loader, path string) (ret T, err error) {
	err = loader.AssignFirst(path, &ret)
	if errors.Is(err, ErrValueNotFound) {
		err = nil
	}
	return
}
