// Package encode writes ir.Node trees as JSON.
//
// # Usage
//
//	// Indented JSON, two spaces per level
//	err := encode.Encode(node, w)
//
//	// Compact output
//	err := encode.Encode(node, w, encode.EncodeWire(true))
//
//	// Terminal colors
//	err := encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Object fields are written in the order they appear in the tree and
// number literals recorded by package parse are written verbatim.
//
// # Related Packages
//
//   - github.com/signadot/go-iiif/ir - IR representation
//   - github.com/signadot/go-iiif/parse - Parse JSON to IR
package encode
