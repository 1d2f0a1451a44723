package lint

import (
	"errors"
	"fmt"
)

// CheckError reports a fault raised while a check was scanning a file,
// either a panic in one of its callbacks or an explicit Reporter.Fail.
// The check's issues for that file are discarded.
type CheckError struct {
	Check string
	Err   error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("check %s failed: %v", e.Check, e.Err)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

// checkFault carries an error raised through Reporter.Fail up to the scan.
type checkFault struct {
	err error
}

func newCheckError(owner any, recovered any) *CheckError {
	var err error
	switch r := recovered.(type) {
	case checkFault:
		err = r.err
	case error:
		err = fmt.Errorf("panic: %w", r)
	default:
		err = fmt.Errorf("panic: %v", r)
	}
	return &CheckError{Check: fmt.Sprintf("%T", owner), Err: err}
}

// withCheckName relabels a CheckError with the key the check is registered under.
func withCheckName(err error, name string) error {
	var cerr *CheckError
	if errors.As(err, &cerr) {
		return &CheckError{Check: name, Err: cerr.Err}
	}
	return &CheckError{Check: name, Err: err}
}
