package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

// MediaResource is the content of an annotation: an image, text, audio or
// a choice between alternatives. Image resources require @id and format.
type MediaResource struct {
	Item
	Descriptive
	Dimensions
	scalar bool
}

func NewImageResource(id, format string) *MediaResource {
	s := newNode(id, TypeImage, "")
	track.Set(s, formatKey, format)
	return mediaOf(s)
}

func mediaOf(s *track.Store) *MediaResource {
	item, desc := node(s)
	return &MediaResource{Item: item, Descriptive: desc, Dimensions: Dimensions{props: s}}
}

func (r *MediaResource) Format() string {
	return track.Value(r.Props(), formatKey)
}

func (r *MediaResource) SetFormat(f string) {
	track.Set(r.Props(), formatKey, f)
}

func (r *MediaResource) ToIR() *ir.Node {
	return convert.Encode(MediaResources, r)
}

type mediaConverter struct{}

var MediaResources convert.Converter[*MediaResource] = mediaConverter{}

func (mediaConverter) Resource() string { return "Resource" }

func (mediaConverter) Create(n *ir.Node) (*MediaResource, error) {
	if n.Type == ir.StringType {
		s := track.NewStore()
		track.Set(s, idKey, n.String)
		r := mediaOf(s)
		r.scalar = true
		return r, nil
	}
	s, err := createOptionalItem("Resource", n)
	if err != nil {
		return nil, err
	}
	if t, _ := convert.String(ir.Get(n, "@type")); t == TypeImage {
		if _, err := convert.RequiredString("Resource", n, "@id"); err != nil {
			return nil, err
		}
		if _, err := convert.RequiredString("Resource", n, formatKey.Name()); err != nil {
			return nil, err
		}
	}
	return mediaOf(s), nil
}

func (mediaConverter) Enrich(r *MediaResource, n *ir.Node) error {
	if n.Type != ir.ObjectType {
		return nil
	}
	s := r.Props()
	if err := enrichNode("Resource", s, n); err != nil {
		return err
	}
	if f, ok := convert.String(ir.Get(n, formatKey.Name())); ok {
		track.Set(s, formatKey, f)
	}
	enrichDimensions(s, n)
	return nil
}

func (mediaConverter) Emit(r *MediaResource, o *convert.Object) {
	s := r.Props()
	emitNode(s, o)
	o.String("format", r.Format())
	emitDimensions(s, o)
}

func (mediaConverter) Scalar(r *MediaResource) *ir.Node {
	if !r.scalar {
		return nil
	}
	return scalarID(r.Props())
}
