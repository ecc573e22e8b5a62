package ir

import "strconv"

// Type is the JSON kind of a node.
type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
)

var typeNames = [...]string{
	NullType:   "null",
	NumberType: "number",
	StringType: "string",
	BoolType:   "boolean",
	ObjectType: "object",
	ArrayType:  "array",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}
