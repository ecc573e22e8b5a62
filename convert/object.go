package convert

import (
	"github.com/signadot/go-iiif/ir"
)

// Object accumulates the fields of an encoded node in insertion order.
type Object struct {
	kvs []ir.KeyVal
	idx map[string]int
}

func NewObject() *Object {
	return &Object{idx: map[string]int{}}
}

// Set writes key. A nil n is skipped; an existing key is replaced in place.
func (o *Object) Set(key string, n *ir.Node) {
	if n == nil {
		return
	}
	if i, ok := o.idx[key]; ok {
		o.kvs[i].Val = n
		return
	}
	o.idx[key] = len(o.kvs)
	o.kvs = append(o.kvs, ir.KeyVal{Key: key, Val: n})
}

func (o *Object) Has(key string) bool {
	_, ok := o.idx[key]
	return ok
}

func (o *Object) Len() int {
	return len(o.kvs)
}

// String writes a non-empty string.
func (o *Object) String(key, v string) {
	if v != "" {
		o.Set(key, ir.FromString(v))
	}
}

// Int writes v if ok.
func (o *Object) Int(key string, v int, ok bool) {
	if ok {
		o.Set(key, ir.FromInt(int64(v)))
	}
}

// Float writes v if ok.
func (o *Object) Float(key string, v float64, ok bool) {
	if ok {
		o.Set(key, ir.FromFloat(v))
	}
}

func (o *Object) Node() *ir.Node {
	return ir.FromKeyVals(o.kvs)
}
