package ir

import (
	"strconv"
	"strings"
)

// Path returns the JSONPath-style location of y within its tree, e.g.
// "$.sequences[0].canvases[3].label".
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		return joinField(y.Parent.Path(), y.ParentField)
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// FieldPath returns the path of field within y, whether or not the field
// is present.
func (y *Node) FieldPath(field string) string {
	if y == nil {
		return joinField("$", field)
	}
	return joinField(y.Path(), field)
}

func joinField(prefix, f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
		return prefix + "." + f
	}
	return prefix + ".'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}
