package a11y

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("a11y: validation failed")

// ValidationError identifies the element and the required attribute (or
// "content") that was missing or blank.
type ValidationError struct {
	Element   string
	Attribute string
}

func (e *ValidationError) Error() string {
	if e.Attribute == ContentRequirement {
		return fmt.Sprintf("a11y: <%s> requires content", e.Element)
	}
	return fmt.Sprintf("a11y: <%s> requires a non-empty %q attribute", e.Element, e.Attribute)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
