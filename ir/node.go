package ir

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = nil
	dst.ParentIndex = 0
	dst.ParentField = ""
	dst.Type = y.Type
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		dstI := yv.Clone()
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := yf.Clone()
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}

	dst.String = y.String
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber builds a number node from a literal, keeping the literal text.
// It returns nil if v is not a number.
func FromNumber(v string) *Node {
	res := &Node{Type: NumberType, Number: v}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		res.Int64 = &i
		return res
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	res.Float64 = &f
	return res
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromMap builds an object with keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object whose fields appear in the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	for i := range kvs {
		res.Append(kvs[i].Key, kvs[i].Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

// Append adds a field to an object node, or an element to an array node
// (in which case key is ignored).
func (y *Node) Append(key string, v *Node) {
	i := len(y.Values)
	v.Parent = y
	v.ParentIndex = i
	if y.Type == ArrayType {
		v.ParentField = ""
		y.Values = append(y.Values, v)
		return
	}
	v.ParentField = key
	y.Fields = append(y.Fields, &Node{
		Type:        StringType,
		String:      key,
		Parent:      y,
		ParentIndex: i,
		ParentField: key,
	})
	y.Values = append(y.Values, v)
}

// Get returns the value of field in the object y, or nil.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Keys returns the field names of an object in document order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

// Each calls f on every field of an object in document order, stopping at
// the first error.
func (y *Node) Each(f func(key string, v *Node) error) error {
	if y.Type != ObjectType {
		return fmt.Errorf("%w: %s at %s", ErrNotObject, y.Type, y.Path())
	}
	for i, field := range y.Fields {
		if err := f(field.String, y.Values[i]); err != nil {
			return err
		}
	}
	return nil
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
