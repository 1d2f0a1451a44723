package charset

import "fmt"

// ReadError reports that a file could not be read or decoded under its
// declared charset. It is fatal for that file's analysis.
type ReadError struct {
	Path    string
	Charset string
	Err     error
}

func (e *ReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot decode input as %s: %v", e.Charset, e.Err)
	}
	return fmt.Sprintf("%s: cannot read file as %s: %v", e.Path, e.Charset, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
