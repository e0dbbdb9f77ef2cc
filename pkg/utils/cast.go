package utils

import (
	"fmt"
)

var ErrNilParam = fmt.Errorf("cast error: got nil param")

// SafeCast asserts cache values without panicking on nil or foreign types.
func SafeCast[T any](param any) (T, error) {
	var zero T

	if param == nil {
		return zero, ErrNilParam
	}

	v, ok := param.(T)
	if !ok {
		return zero, fmt.Errorf("cast error: got type: %T, want type: %T", param, zero)
	}

	return v, nil
}
