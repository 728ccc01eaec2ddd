package session

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks every error caused by invalid session input rather
// than by I/O. It is always joined with a more specific sentinel.
var ErrConfiguration = errors.New("session: invalid configuration")

// configErrorf wraps err as a configuration error of op.
func configErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrConfiguration, err)
}
