package convert

import (
	"encoding/json"

	"github.com/signadot/go-iiif/debug"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/parse"
)

// Emitter is implemented by additional values that render themselves.
type Emitter interface {
	ToIR() *ir.Node
}

// Collapse renders a one-or-many field: nothing when empty, the bare
// element when there is one, else an array.
func Collapse(ns []*ir.Node) *ir.Node {
	switch len(ns) {
	case 0:
		return nil
	case 1:
		return ns[0]
	}
	return ir.FromSlice(ns)
}

// Always renders a field that is always an array, omitting it when empty.
func Always(ns []*ir.Node) *ir.Node {
	if len(ns) == 0 {
		return nil
	}
	return ir.FromSlice(ns)
}

// Strings renders each string as a node.
func Strings(vs []string) []*ir.Node {
	var res []*ir.Node
	for _, v := range vs {
		res = append(res, ir.FromString(v))
	}
	return res
}

// EmitRaw renders an additional property value. Raw nodes are copied,
// Emitters render themselves and anything else goes through
// encoding/json. Values that cannot be rendered are dropped.
func EmitRaw(v any) *ir.Node {
	switch x := v.(type) {
	case nil:
		return nil
	case *ir.Node:
		return x.Clone()
	case Emitter:
		return x.ToIR()
	}
	d, err := json.Marshal(v)
	if err == nil {
		var n *ir.Node
		n, err = parse.Parse(d)
		if err == nil {
			return n
		}
	}
	if debug.Encode() {
		debug.Logf("encode: dropping %T: %v\n", v, err)
	}
	return nil
}
