package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

var (
	layerOtherContentKey = track.NewKey[[]string]("otherContent")
	totalKey             = track.NewKey[int]("total")
)

// Layer groups annotation lists across canvases, for example all the
// lists of one transcription.
type Layer struct {
	Item
	Descriptive
}

func NewLayer(id, label string) *Layer {
	return layerOf(newNode(id, TypeLayer, label))
}

func layerOf(s *track.Store) *Layer {
	item, desc := node(s)
	return &Layer{Item: item, Descriptive: desc}
}

// OtherContent returns the @ids of the layer's annotation lists.
func (l *Layer) OtherContent() []string {
	return track.Value(l.Props(), layerOtherContentKey)
}

func (l *Layer) AddOtherContent(ids ...string) {
	track.Append(l.Props(), layerOtherContentKey, ids...)
}

func (l *Layer) Total() (int, bool) {
	return track.Get(l.Props(), totalKey)
}

func (l *Layer) SetTotal(t int) {
	track.Set(l.Props(), totalKey, t)
}

func (l *Layer) ToIR() *ir.Node {
	return convert.Encode(Layers, l)
}

type layerConverter struct{}

var Layers convert.Converter[*Layer] = layerConverter{}

func (layerConverter) Resource() string { return "Layer" }

func (layerConverter) Create(n *ir.Node) (*Layer, error) {
	s, err := createItem("Layer", n)
	if err != nil {
		return nil, err
	}
	return layerOf(s), nil
}

func (layerConverter) Enrich(l *Layer, n *ir.Node) error {
	s := l.Props()
	if err := enrichNode("Layer", s, n); err != nil {
		return err
	}
	ids, err := decodeURIs("Layer", n, layerOtherContentKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, layerOtherContentKey, ids)
	if t, ok := convert.Int(ir.Get(n, totalKey.Name())); ok {
		track.Set(s, totalKey, t)
	}
	return nil
}

func (layerConverter) Emit(l *Layer, o *convert.Object) {
	emitNode(l.Props(), o)
	o.Set("otherContent", convert.Always(convert.Strings(l.OtherContent())))
	t, ok := l.Total()
	o.Int("total", t, ok)
}
