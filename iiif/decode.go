package iiif

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/encode"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/parse"
)

var ErrUnknownType = errors.New("unknown resource type")

// Decode decodes a resource of any type, chosen by its @type.
func Decode(n *ir.Node) (Resource, error) {
	t, _ := convert.String(ir.Get(n, "@type"))
	switch t {
	case TypeManifest:
		return decodeResource(Manifests, n)
	case TypeCollection:
		return decodeResource(Collections, n)
	case TypeSequence:
		return decodeResource(Sequences, n)
	case TypeCanvas:
		return decodeResource(Canvases, n)
	case TypeRange:
		return decodeResource(Ranges, n)
	case TypeAnnotationList:
		return decodeResource(AnnotationLists, n)
	case TypeLayer:
		return decodeResource(Layers, n)
	case TypeAnnotation:
		return decodeResource(Annotations, n)
	}
	path := "$"
	if n != nil {
		path = n.FieldPath("@type")
	}
	return nil, &convert.DecodeError{
		Resource: "Resource",
		Field:    "@type",
		Path:     path,
		Err:      fmt.Errorf("%w %q", ErrUnknownType, t),
	}
}

func decodeResource[T Resource](c convert.Converter[T], n *ir.Node) (Resource, error) {
	v, err := convert.Decode(c, n)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Parse decodes a JSON document of any resource type.
func Parse(d []byte, opts ...parse.ParseOption) (Resource, error) {
	n, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return Decode(n)
}

func ParseManifest(d []byte, opts ...parse.ParseOption) (*Manifest, error) {
	return convert.DecodeBytes(Manifests, d, convert.WithParseOptions(opts...))
}

func ParseCollection(d []byte, opts ...parse.ParseOption) (*Collection, error) {
	return convert.DecodeBytes(Collections, d, convert.WithParseOptions(opts...))
}

// Marshal encodes r as JSON.
func Marshal(r Resource, opts ...encode.EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(r.ToIR(), buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
