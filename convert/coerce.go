package convert

import (
	"math"
	"time"

	"github.com/signadot/go-iiif/ir"
)

// OneOrMany normalises a field that holds either a single value or an
// array of values. A null field holds nothing.
func OneOrMany(n *ir.Node) []*ir.Node {
	if n == nil || n.Type == ir.NullType {
		return nil
	}
	if n.Type == ir.ArrayType {
		return n.Values
	}
	return []*ir.Node{n}
}

// Required returns field of n or a required field error.
func Required(resource string, n *ir.Node, field string) (*ir.Node, error) {
	v := ir.Get(n, field)
	if v == nil || v.Type == ir.NullType {
		return nil, Missing(resource, n, field)
	}
	return v, nil
}

// RequiredString returns the string value of field of n.
func RequiredString(resource string, n *ir.Node, field string) (string, error) {
	v, err := Required(resource, n, field)
	if err != nil {
		return "", err
	}
	s, ok := String(v)
	if !ok {
		return "", Shape(resource, n, field, ir.StringType)
	}
	return s, nil
}

// RequiredInt returns the integer value of field of n.
func RequiredInt(resource string, n *ir.Node, field string) (int, error) {
	v, err := Required(resource, n, field)
	if err != nil {
		return 0, err
	}
	i, ok := Int(v)
	if !ok {
		return 0, Shape(resource, n, field, ir.NumberType)
	}
	return i, nil
}

// ArrayField returns the elements of field of n, which must be an array if
// present. A null field counts as absent.
func ArrayField(resource string, n *ir.Node, field string) ([]*ir.Node, error) {
	v := ir.Get(n, field)
	if v == nil || v.Type == ir.NullType {
		return nil, nil
	}
	if v.Type != ir.ArrayType {
		return nil, Shape(resource, n, field, ir.ArrayType)
	}
	return v.Values, nil
}

// ObjectField returns field of n, which must be an object if present. A
// null field counts as absent.
func ObjectField(resource string, n *ir.Node, field string) (*ir.Node, error) {
	v := ir.Get(n, field)
	if v == nil || v.Type == ir.NullType {
		return nil, nil
	}
	if v.Type != ir.ObjectType {
		return nil, Shape(resource, n, field, ir.ObjectType)
	}
	return v, nil
}

func String(n *ir.Node) (string, bool) {
	if n == nil || n.Type != ir.StringType {
		return "", false
	}
	return n.String, true
}

// Int accepts any number with an integral value.
func Int(n *ir.Node) (int, bool) {
	if n == nil || n.Type != ir.NumberType {
		return 0, false
	}
	if n.Int64 != nil {
		return int(*n.Int64), true
	}
	if n.Float64 != nil {
		f := *n.Float64
		if f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
			return int(f), true
		}
	}
	return 0, false
}

func Float(n *ir.Node) (float64, bool) {
	if n == nil || n.Type != ir.NumberType {
		return 0, false
	}
	if n.Float64 != nil {
		return *n.Float64, true
	}
	if n.Int64 != nil {
		return float64(*n.Int64), true
	}
	return 0, false
}

func Bool(n *ir.Node) (bool, bool) {
	if n == nil || n.Type != ir.BoolType {
		return false, false
	}
	return n.Bool, true
}

// Time parses an xsd:dateTime string such as "1856-01-01T00:00:00Z". It
// reports false unless FromTime writes the literal back unchanged, so
// forms like "+00:00" offsets stay with passthrough.
func Time(n *ir.Node) (time.Time, bool) {
	s, ok := String(n)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	if back := FromTime(t); back == nil || back.String != s {
		return time.Time{}, false
	}
	return t, true
}

// FromTime is the inverse of Time.
func FromTime(t time.Time) *ir.Node {
	if t.IsZero() {
		return nil
	}
	return ir.FromString(t.Format(time.RFC3339Nano))
}
