// Package ir provides the generic document tree used by the IIIF mapper.
//
// # Overview
//
// Every document the mapper reads or writes is represented as a tree of
// ir.Node values before it is bound to typed resources. The tree is purely
// semantic: it carries no position or whitespace information, only the
// structure of the JSON document.
//
// # Node Structure
//
// A Node is a recursive tagged union. The Type field selects which of the
// value fields is meaningful:
//
//   - NullType: null
//   - BoolType: Bool
//   - NumberType: Int64, Float64 and Number (the literal text as read)
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields and Values
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i].
// Keys are StringType nodes. Field order is document order and is preserved
// by every constructor except FromMap, which sorts keys.
//
// # Numbers
//
// Parsed numbers keep their literal text in Number so that re-encoding
// reproduces the input literal. Int64 is set when the literal is an integer
// that fits in 64 bits, Float64 otherwise. Programmatic constructors leave
// Number empty.
//
// # Navigating Nodes
//
// Nodes maintain parent links:
//
//   - Parent: parent node (nil for root)
//   - ParentIndex: index in the parent's Values
//   - ParentField: field name if the parent is an object
//
// Use Path() for a JSONPath-style location, used in decode errors:
//
//	path := node.Path() // e.g., "$.sequences[0].canvases[3]"
//
// # Thread Safety
//
// Node structures are not thread-safe. Clone nodes before handing them to
// another goroutine.
package ir
