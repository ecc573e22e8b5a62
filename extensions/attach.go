package extensions

import (
	"fmt"

	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/debug"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

// Value is a typed extension value.
type Value interface {
	track.Trackable
	ToIR() *ir.Node
}

// Set stores v under name on t. An empty v clears name.
func Set[T Value](t track.Trackable, name string, v T) {
	if track.IsEmpty(v) {
		t.Props().Clear(name)
		return
	}
	t.Props().SetAdditional(name, v)
}

// Get returns the value under name on t, decoding a raw node with c. The
// second result is false if name is unset.
func Get[T Value](t track.Trackable, name string, c convert.Converter[T]) (T, bool, error) {
	var zero T
	s := t.Props()
	raw, ok := s.Raw(name)
	if !ok {
		return zero, false, nil
	}
	switch v := raw.(type) {
	case T:
		return v, true, nil
	case *ir.Node:
		res, err := convert.Decode(c, v)
		if err != nil {
			return zero, false, fmt.Errorf("extension %s: %w", name, err)
		}
		if debug.Decode() {
			debug.Logf("extension %s hydrated as %s\n", name, c.Resource())
		}
		s.SetAdditional(name, res)
		return res, true, nil
	}
	return zero, false, fmt.Errorf("extension %s: unexpected value %T", name, raw)
}
