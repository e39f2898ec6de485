package service

import (
	"errors"
	"fmt"
)

// ErrEmptyProfile is matched by errors.Is for any EmptyProfileError.
var ErrEmptyProfile = errors.New("no public repositories found")

// EmptyProfileError is returned when a profile reports no public repositories.
type EmptyProfileError struct {
	Login string
}

func (e *EmptyProfileError) Error() string {
	return fmt.Sprintf("user %q: %v", e.Login, ErrEmptyProfile)
}

func (e *EmptyProfileError) Unwrap() error {
	return ErrEmptyProfile
}
