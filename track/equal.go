package track

import (
	"reflect"

	"github.com/signadot/go-iiif/ir"
)

// IsEmpty reports whether v counts as no value: nil, a nil pointer, or a
// zero length string, slice or map.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	case reflect.Slice, reflect.Map, reflect.String:
		return rv.Len() == 0
	}
	return false
}

// Equal compares property values. Trackable values compare by store
// contents, *ir.Node values structurally, and values with an
// Equal(T) bool method use it. Slices compare element by element.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return IsEmpty(a) && IsEmpty(b)
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		na, oka := asNode(a)
		nb, okb := asNode(b)
		return oka && okb && ir.Equivalent(na, nb)
	}
	if av.Kind() == reflect.Pointer && (av.IsNil() || bv.IsNil()) {
		return av.IsNil() == bv.IsNil()
	}
	switch x := a.(type) {
	case *ir.Node:
		return ir.Equal(x, b.(*ir.Node))
	case Trackable:
		return x.Props().Equal(b.(Trackable).Props())
	}
	if m := av.MethodByName("Equal"); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 1 && mt.In(0) == av.Type() && mt.NumOut() == 1 && mt.Out(0).Kind() == reflect.Bool {
			return m.Call([]reflect.Value{bv})[0].Bool()
		}
	}
	if av.Kind() == reflect.Slice {
		if av.Len() != bv.Len() {
			return false
		}
		for i := range av.Len() {
			if !Equal(av.Index(i).Interface(), bv.Index(i).Interface()) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

type nodeEmitter interface {
	ToIR() *ir.Node
}

// asNode renders raw nodes and values that render themselves, so a typed
// extension value compares equal to the raw node it was decoded from. The
// comparison ignores field order, which the typed emission may change.
func asNode(v any) (*ir.Node, bool) {
	switch x := v.(type) {
	case *ir.Node:
		return x, true
	case nodeEmitter:
		return x.ToIR(), true
	}
	return nil, false
}
