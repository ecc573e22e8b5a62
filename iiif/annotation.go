package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

var (
	motivationKey = track.NewKey[string]("motivation")
	resourceKey   = track.NewKey[*MediaResource]("resource")
	onKey         = track.NewKey[*Ref]("on")
)

// Annotation associates content with a canvas. Images painted onto a
// canvas are annotations with motivation sc:painting. The resource and
// target are required.
type Annotation struct {
	Item
	Descriptive
}

// NewImageAnnotation paints res onto the canvas on.
func NewImageAnnotation(id string, res *MediaResource, on string) *Annotation {
	a := annotationOf(newNode(id, TypeAnnotation, ""))
	a.SetMotivation(MotivationPainting)
	a.SetResource(res)
	a.SetOn(NewRef(on))
	return a
}

func annotationOf(s *track.Store) *Annotation {
	item, desc := node(s)
	return &Annotation{Item: item, Descriptive: desc}
}

func (a *Annotation) Motivation() string {
	return track.Value(a.Props(), motivationKey)
}

func (a *Annotation) SetMotivation(m string) {
	track.Set(a.Props(), motivationKey, m)
}

func (a *Annotation) Resource() *MediaResource {
	return track.Value(a.Props(), resourceKey)
}

func (a *Annotation) SetResource(r *MediaResource) {
	track.Set(a.Props(), resourceKey, r)
}

// On returns the annotation's target.
func (a *Annotation) On() *Ref {
	return track.Value(a.Props(), onKey)
}

func (a *Annotation) SetOn(r *Ref) {
	track.Set(a.Props(), onKey, r)
}

func (a *Annotation) ToIR() *ir.Node {
	return convert.Encode(Annotations, a)
}

type annotationConverter struct{}

var Annotations convert.Converter[*Annotation] = annotationConverter{}

func (annotationConverter) Resource() string { return "Annotation" }

func (annotationConverter) Create(n *ir.Node) (*Annotation, error) {
	s, err := createOptionalItem("Annotation", n)
	if err != nil {
		return nil, err
	}
	if err := requireType("Annotation", n); err != nil {
		return nil, err
	}
	if _, err := convert.Required("Annotation", n, resourceKey.Name()); err != nil {
		return nil, err
	}
	if _, err := convert.Required("Annotation", n, onKey.Name()); err != nil {
		return nil, err
	}
	return annotationOf(s), nil
}

func (annotationConverter) Enrich(a *Annotation, n *ir.Node) error {
	s := a.Props()
	if err := enrichNode("Annotation", s, n); err != nil {
		return err
	}
	if m, ok := convert.String(ir.Get(n, motivationKey.Name())); ok {
		track.Set(s, motivationKey, m)
	}
	res, err := convert.Decode(MediaResources, ir.Get(n, resourceKey.Name()))
	if err != nil {
		return err
	}
	track.Set(s, resourceKey, res)
	on, err := decodeRef(n, onKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, onKey, on)
	return nil
}

func (annotationConverter) Emit(a *Annotation, o *convert.Object) {
	s := a.Props()
	emitNode(s, o)
	o.String("motivation", a.Motivation())
	o.Set("resource", convert.Encode(MediaResources, a.Resource()))
	o.Set("on", convert.Encode(Refs, a.On()))
}
