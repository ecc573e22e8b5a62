package libdiff

import "github.com/signadot/go-iiif/ir"

// DiffNumber compares numbers by value. Equal values written differently
// yield a Literal change.
func DiffNumber(from, to *ir.Node) []Change {
	if ir.Compare(from, to) != 0 {
		return []Change{makeChange(Replace, from, to)}
	}
	if from.Number != "" && to.Number != "" && from.Number != to.Number {
		return []Change{makeChange(Literal, from, to)}
	}
	return nil
}
