// Package convert maps document trees to trackable values and back.
//
// Decoding a node runs three steps. The converter's Create builds a
// skeleton from the fields a value cannot exist without, failing with
// [ErrRequiredField] if one is missing. Enrich then sets every declared
// field it recognises. Finally every object field that did not end up in
// the value's store is copied in as an additional property, unexamined.
//
// Encoding mirrors this: Emit writes the declared fields in the type's
// fixed order, then the additional properties are written verbatim in the
// order they were first stored.
package convert
