package convert

import (
	"errors"
	"fmt"

	"github.com/signadot/go-iiif/ir"
)

var (
	ErrRequiredField = errors.New("required field missing")
	ErrShape         = errors.New("unexpected shape")
)

// DecodeError identifies the resource type and field a decode failed on.
type DecodeError struct {
	Resource string
	Field    string
	Path     string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode %s at %s: %v", e.Resource, e.Path, e.Err)
	}
	return fmt.Sprintf("decode %s field %q at %s: %v", e.Resource, e.Field, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Missing returns a required field error for field of n.
func Missing(resource string, n *ir.Node, field string) error {
	return &DecodeError{
		Resource: resource,
		Field:    field,
		Path:     n.FieldPath(field),
		Err:      ErrRequiredField,
	}
}

// Shape returns a shape error for field of n, which should have been of
// type want.
func Shape(resource string, n *ir.Node, field string, want ir.Type) error {
	path := "$"
	got := ir.NullType
	if n != nil {
		path = n.Path()
		got = n.Type
		if field != "" {
			path = n.FieldPath(field)
			if v := ir.Get(n, field); v != nil {
				got = v.Type
			}
		}
	}
	return &DecodeError{
		Resource: resource,
		Field:    field,
		Path:     path,
		Err:      fmt.Errorf("%w: expected %s, got %s", ErrShape, want, got),
	}
}
