package crossfile

import (
	"errors"
	"fmt"
)

// ErrUnknownCheck is returned when no check is registered under a key.
var ErrUnknownCheck = errors.New("unknown cross-file check")

// ConstructionError reports a cross-file check that could not be built or
// failed while running. It fails the whole cross-file run.
type ConstructionError struct {
	Check string
	Err   error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot save issues on check %s: %v", e.Check, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
