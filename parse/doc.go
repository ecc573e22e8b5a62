// Package parse reads JSON documents into ir.Node trees.
//
// # Usage
//
//	node, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// From a reader, rejecting deeply nested input
//	node, err := parse.ParseReader(r, parse.ParseMaxDepth(64))
//
// Object fields keep document order and number literals keep their text,
// so encoding the result with package encode reproduces the input
// structurally.
//
// # Related Packages
//
//   - github.com/signadot/go-iiif/ir - IR representation
//   - github.com/signadot/go-iiif/encode - Encode IR to JSON
package parse
