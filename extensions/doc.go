// Package extensions attaches typed sub-documents to any resource through
// its additional properties.
//
// A decoded document keeps an extension field as a raw node like any other
// unknown field. Get decodes it on first access and stores the typed value
// in its place, so later reads and writes see the same value and encoding
// renders it through its ToIR method.
package extensions
