package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

var (
	imagesKey       = track.NewKey[[]*Annotation]("images")
	otherContentKey = track.NewKey[[]*AnnotationList]("otherContent")
	durationKey     = track.NewKey[float64]("duration")
)

// Canvas is a virtual page. Its @id, label, height and width are required.
type Canvas struct {
	Item
	Descriptive
	Dimensions
}

func NewCanvas(id, label string, height, width int) *Canvas {
	s := newNode(id, TypeCanvas, label)
	track.Set(s, heightKey, height)
	track.Set(s, widthKey, width)
	return canvasOf(s)
}

func canvasOf(s *track.Store) *Canvas {
	item, desc := node(s)
	return &Canvas{Item: item, Descriptive: desc, Dimensions: Dimensions{props: s}}
}

func (c *Canvas) Images() []*Annotation {
	return track.Value(c.Props(), imagesKey)
}

func (c *Canvas) SetImages(as ...*Annotation) {
	track.Set(c.Props(), imagesKey, as)
}

func (c *Canvas) AddImage(as ...*Annotation) {
	track.Append(c.Props(), imagesKey, as...)
}

func (c *Canvas) OtherContent() []*AnnotationList {
	return track.Value(c.Props(), otherContentKey)
}

func (c *Canvas) AddOtherContent(ls ...*AnnotationList) {
	track.Append(c.Props(), otherContentKey, ls...)
}

func (c *Canvas) Duration() (float64, bool) {
	return track.Get(c.Props(), durationKey)
}

func (c *Canvas) SetDuration(d float64) {
	track.Set(c.Props(), durationKey, d)
}

func (c *Canvas) ToIR() *ir.Node {
	return convert.Encode(Canvases, c)
}

type canvasConverter struct{}

var Canvases convert.Converter[*Canvas] = canvasConverter{}

func (canvasConverter) Resource() string { return "Canvas" }

func (canvasConverter) Create(n *ir.Node) (*Canvas, error) {
	s, err := createItem("Canvas", n)
	if err != nil {
		return nil, err
	}
	if err := requireType("Canvas", n); err != nil {
		return nil, err
	}
	if _, err := convert.Required("Canvas", n, labelKey.Name()); err != nil {
		return nil, err
	}
	if err := requireDimensions("Canvas", s, n); err != nil {
		return nil, err
	}
	return canvasOf(s), nil
}

func (canvasConverter) Enrich(c *Canvas, n *ir.Node) error {
	s := c.Props()
	if err := enrichNode("Canvas", s, n); err != nil {
		return err
	}
	images, err := decodeArray("Canvas", Annotations, n, imagesKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, imagesKey, images)
	others, err := decodeArray("Canvas", AnnotationLists, n, otherContentKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, otherContentKey, others)
	if d, ok := convert.Float(ir.Get(n, durationKey.Name())); ok {
		track.Set(s, durationKey, d)
	}
	return nil
}

func (canvasConverter) Emit(c *Canvas, o *convert.Object) {
	s := c.Props()
	emitNode(s, o)
	emitDimensions(s, o)
	o.Set("images", convert.Always(convert.EncodeAll(Annotations, c.Images())))
	o.Set("otherContent", convert.Always(convert.EncodeAll(AnnotationLists, c.OtherContent())))
	d, ok := c.Duration()
	o.Float("duration", d, ok)
}
