package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

var resourcesKey = track.NewKey[[]*Annotation]("resources")

// AnnotationList groups annotations that are not images, such as
// transcriptions or comments. Lists referenced from a canvas usually carry
// only @id and @type.
type AnnotationList struct {
	Item
	Descriptive
}

func NewAnnotationList(id string) *AnnotationList {
	return annotationListOf(newNode(id, TypeAnnotationList, ""))
}

func annotationListOf(s *track.Store) *AnnotationList {
	item, desc := node(s)
	return &AnnotationList{Item: item, Descriptive: desc}
}

func (l *AnnotationList) Resources() []*Annotation {
	return track.Value(l.Props(), resourcesKey)
}

func (l *AnnotationList) AddResource(as ...*Annotation) {
	track.Append(l.Props(), resourcesKey, as...)
}

func (l *AnnotationList) ToIR() *ir.Node {
	return convert.Encode(AnnotationLists, l)
}

type annotationListConverter struct{}

var AnnotationLists convert.Converter[*AnnotationList] = annotationListConverter{}

func (annotationListConverter) Resource() string { return "AnnotationList" }

func (annotationListConverter) Create(n *ir.Node) (*AnnotationList, error) {
	s, err := createItem("AnnotationList", n)
	if err != nil {
		return nil, err
	}
	return annotationListOf(s), nil
}

func (annotationListConverter) Enrich(l *AnnotationList, n *ir.Node) error {
	s := l.Props()
	if err := enrichNode("AnnotationList", s, n); err != nil {
		return err
	}
	rs, err := decodeArray("AnnotationList", Annotations, n, resourcesKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, resourcesKey, rs)
	return nil
}

func (annotationListConverter) Emit(l *AnnotationList, o *convert.Object) {
	emitNode(l.Props(), o)
	o.Set("resources", convert.Always(convert.EncodeAll(Annotations, l.Resources())))
}
