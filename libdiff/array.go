package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/go-iiif/ir"
)

// DiffArray aligns the elements of from and to before comparing them:
//
//  1. each element is summarised as a rune; containers summarise by their
//     @id or id field when they have one, else by type
//  2. the rune sequences are diffed
//  3. aligned elements are compared with df
//  4. a delete followed by an insert at the same place becomes a
//     comparison of the two elements
func DiffArray(from, to *ir.Node, df DiffFunc) []Change {
	m := map[uint64]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var res []Change
	var pending []*ir.Node
	flush := func() {
		for _, n := range pending {
			res = append(res, makeChange(Delete, n, nil))
		}
		pending = nil
	}
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				pending = append(pending, from.Values[fi])
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				if len(pending) > 0 {
					res = append(res, df(pending[0], to.Values[ti])...)
					pending = pending[1:]
				} else {
					res = append(res, makeChange(Insert, nil, to.Values[ti]))
				}
				ti++
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			for range n {
				res = append(res, df(from.Values[fi], to.Values[ti])...)
				fi++
				ti++
			}
		}
	}
	flush()
	return res
}

func mapValues(m map[uint64]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summary(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

var (
	anonObject = ir.FromKeyVals(nil).Hash()
	anyArray   = ir.FromSlice(nil).Hash()
)

// summary hashes leaves whole. Containers are not looked into beyond
// their identifier.
func summary(node *ir.Node) uint64 {
	switch node.Type {
	case ir.ObjectType:
		for _, f := range []string{"@id", "id"} {
			if id := ir.Get(node, f); id != nil && id.Type == ir.StringType {
				return ir.FromKeyVals([]ir.KeyVal{{Key: "@id", Val: ir.FromString(id.String)}}).Hash()
			}
		}
		return anonObject
	case ir.ArrayType:
		return anyArray
	}
	return node.Hash()
}
