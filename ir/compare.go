package ir

import (
	"cmp"
	"slices"
	"strings"
)

// typeRank orders nodes of different types:
// null < bool < number < string < array < object.
var typeRank = [...]int{
	NullType:   0,
	BoolType:   1,
	NumberType: 2,
	StringType: 3,
	ArrayType:  4,
	ObjectType: 5,
}

// Compare orders nodes, returning -1, 0 or +1. A nil node sorts first.
// Numbers compare by value, so 1 and 1.0 are equal. Objects compare field
// by field in document order.
func Compare(a, b *Node) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(typeRank[a.Type], typeRank[b.Type]); c != 0 {
		return c
	}
	switch a.Type {
	case BoolType:
		return cmp.Compare(boolRank(a.Bool), boolRank(b.Bool))
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return slices.CompareFunc(a.Values, b.Values, Compare)
	case ObjectType:
		for i := range min(len(a.Values), len(b.Values)) {
			if c := cmp.Or(Compare(a.Fields[i], b.Fields[i]), Compare(a.Values[i], b.Values[i])); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.Values), len(b.Values))
	}
	return 0
}

// Equal reports whether a and b are the same tree, including the order of
// object fields.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func boolRank(v bool) int {
	if v {
		return 1
	}
	return 0
}

func compareNumbers(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	fa, okA := a.float()
	fb, okB := b.float()
	if !okA || !okB {
		return strings.Compare(a.Number, b.Number)
	}
	return cmp.Compare(fa, fb)
}

func (y *Node) float() (float64, bool) {
	if y.Int64 != nil {
		return float64(*y.Int64), true
	}
	if y.Float64 != nil {
		return *y.Float64, true
	}
	return 0, false
}

// Equivalent is Equal with object fields compared as unordered sets.
func Equivalent(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || len(a.Values) != len(b.Values) {
		return false
	}
	switch a.Type {
	case ArrayType:
		return slices.EqualFunc(a.Values, b.Values, Equivalent)
	case ObjectType:
		for i, f := range a.Fields {
			if !Equivalent(a.Values[i], Get(b, f.String)) {
				return false
			}
		}
		return true
	}
	return Compare(a, b) == 0
}
