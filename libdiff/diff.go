// Package libdiff reports structural differences between two document
// trees, such as a document before and after a decode and encode cycle.
package libdiff

import (
	"github.com/signadot/go-iiif/debug"
	"github.com/signadot/go-iiif/ir"
)

// DiffFunc compares two values at the same place in their documents.
type DiffFunc func(from, to *ir.Node) []Change

// Diff returns the differences between from and to, in document order.
func Diff(from, to *ir.Node) []Change {
	cs := diff(from, to)
	if debug.Diff() {
		debug.Logf("diff %s: %d changes\n", pathOf(from, to), len(cs))
	}
	return cs
}

func pathOf(from, to *ir.Node) string {
	if to != nil {
		return to.Path()
	}
	if from != nil {
		return from.Path()
	}
	return "$"
}

func diff(from, to *ir.Node) []Change {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil:
		return []Change{makeChange(Insert, nil, to)}
	case to == nil:
		return []Change{makeChange(Delete, from, nil)}
	case from.Type != to.Type:
		return []Change{makeChange(Replace, from, to)}
	}
	switch from.Type {
	case ir.ObjectType:
		return DiffObject(from, to, diff)
	case ir.ArrayType:
		return DiffArray(from, to, diff)
	case ir.StringType:
		return DiffString(from, to)
	case ir.NumberType:
		return DiffNumber(from, to)
	case ir.BoolType:
		if from.Bool != to.Bool {
			return []Change{makeChange(Replace, from, to)}
		}
	}
	return nil
}

// DiffObject compares fields by name. Fields of from are visited in order,
// then fields only in to.
func DiffObject(from, to *ir.Node, df DiffFunc) []Change {
	var res []Change
	shared := 0
	for i, f := range from.Fields {
		tv := ir.Get(to, f.String)
		if tv == nil {
			res = append(res, makeChange(Delete, from.Values[i], nil))
			continue
		}
		shared++
		res = append(res, df(from.Values[i], tv)...)
	}
	for i, f := range to.Fields {
		if ir.Get(from, f.String) == nil {
			res = append(res, makeChange(Insert, nil, to.Values[i]))
		}
	}
	if shared > 1 && !sameOrder(from, to) {
		res = append(res, makeChange(Reorder, from, to))
	}
	return res
}

// sameOrder reports whether the fields common to a and b appear in the
// same relative order.
func sameOrder(a, b *ir.Node) bool {
	var as, bs []string
	for _, f := range a.Fields {
		if ir.Get(b, f.String) != nil {
			as = append(as, f.String)
		}
	}
	for _, f := range b.Fields {
		if ir.Get(a, f.String) != nil {
			bs = append(bs, f.String)
		}
	}
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
