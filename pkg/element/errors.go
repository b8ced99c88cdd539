package element

import (
	"errors"
	"fmt"
)

// ErrTagRequired is matched by the ArgumentError returned when an element is
// constructed without a tag name.
var ErrTagRequired = errors.New("element: tag is required")

// ArgumentError reports a required constructor argument that was omitted.
type ArgumentError struct {
	Argument string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("element: argument %q is required", e.Argument)
}

// Unwrap lets errors.Is match ErrTagRequired.
func (e *ArgumentError) Unwrap() error {
	if e.Argument == "tag" {
		return ErrTagRequired
	}
	return nil
}
