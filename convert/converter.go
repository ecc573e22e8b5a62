package convert

import (
	"github.com/signadot/go-iiif/debug"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

// Converter describes how one resource type maps to a document node.
type Converter[T track.Trackable] interface {
	// Resource names the type in errors.
	Resource() string
	// Create builds a value from the fields it cannot exist without.
	Create(n *ir.Node) (T, error)
	// Enrich sets the remaining declared fields found in n.
	Enrich(v T, n *ir.Node) error
	// Emit writes the declared fields of v in emission order.
	Emit(v T, o *Object)
}

// ScalarForm is implemented by converters whose values may be written as a
// bare scalar. Scalar returns nil when v needs the object form.
type ScalarForm[T track.Trackable] interface {
	Scalar(v T) *ir.Node
}

// Decode builds a T from n. On error no value is returned.
func Decode[T track.Trackable](c Converter[T], n *ir.Node) (T, error) {
	var zero T
	if n == nil {
		return zero, &DecodeError{Resource: c.Resource(), Path: "$", Err: ErrRequiredField}
	}
	if debug.Decode() {
		debug.Logf("decode %s at %s\n", c.Resource(), n.Path())
	}
	v, err := c.Create(n)
	if err != nil {
		return zero, err
	}
	if err := c.Enrich(v, n); err != nil {
		return zero, err
	}
	props := v.Props()
	if n.Type == ir.ObjectType {
		Passthrough(props, n)
	}
	props.Commit()
	return v, nil
}

// DecodeAll decodes each node in ns, stopping at the first error.
func DecodeAll[T track.Trackable](c Converter[T], ns []*ir.Node) ([]T, error) {
	if len(ns) == 0 {
		return nil, nil
	}
	res := make([]T, 0, len(ns))
	for _, n := range ns {
		v, err := Decode(c, n)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

// Passthrough stores a copy of every field of n not already in s as an
// additional property.
func Passthrough(s *track.Store, n *ir.Node) {
	for i, f := range n.Fields {
		if s.Has(f.String) {
			continue
		}
		if debug.Decode() {
			debug.Logf("decode passthrough %s\n", n.FieldPath(f.String))
		}
		s.SetAdditional(f.String, n.Values[i].Clone())
	}
}

// Encode renders v. A nil v renders as nil.
func Encode[T track.Trackable](c Converter[T], v T) *ir.Node {
	if track.IsEmpty(v) {
		return nil
	}
	if sc, ok := c.(ScalarForm[T]); ok {
		if n := sc.Scalar(v); n != nil {
			return n
		}
	}
	o := NewObject()
	c.Emit(v, o)
	props := v.Props()
	for _, k := range props.AdditionalKeys() {
		if o.Has(k) {
			continue
		}
		raw, _ := props.Raw(k)
		o.Set(k, EmitRaw(raw))
	}
	if debug.Encode() {
		debug.Logf("encode %s %d fields\n", c.Resource(), o.Len())
	}
	return o.Node()
}

// EncodeAll renders each value in vs, skipping nils.
func EncodeAll[T track.Trackable](c Converter[T], vs []T) []*ir.Node {
	var res []*ir.Node
	for _, v := range vs {
		if n := Encode(c, v); n != nil {
			res = append(res, n)
		}
	}
	return res
}
