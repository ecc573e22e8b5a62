// Package track provides the property store behind every IIIF resource.
//
// A [Store] maps stable string keys to [Descriptor]s. Each descriptor keeps
// the value a property was created with and, once changed, the value it was
// changed to, so callers can ask which properties were modified and what
// they used to be. Descriptors created for fields the schema does not
// declare are flagged additional; the converter re-emits those verbatim.
//
// Typed access goes through [Key] selectors. Resources declare their keys
// once as package level variables, so a field's wire name is written in
// exactly one place:
//
//	var heightKey = track.NewKey[int]("height")
//
//	track.Set(c.Props(), heightKey, 100)
//	h, ok := track.Get(c.Props(), heightKey)
package track
