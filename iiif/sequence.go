package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

var canvasesKey = track.NewKey[[]*Canvas]("canvases")

// Sequence orders the canvases of a manifest. Its @id is optional.
type Sequence struct {
	Item
	Descriptive
}

func NewSequence(id string) *Sequence {
	item, desc := node(newNode(id, TypeSequence, ""))
	return &Sequence{Item: item, Descriptive: desc}
}

func (s *Sequence) Canvases() []*Canvas {
	return track.Value(s.Props(), canvasesKey)
}

func (s *Sequence) SetCanvases(cs ...*Canvas) {
	track.Set(s.Props(), canvasesKey, cs)
}

func (s *Sequence) AddCanvas(cs ...*Canvas) {
	track.Append(s.Props(), canvasesKey, cs...)
}

func (s *Sequence) RemoveCanvas(id string) {
	track.Remove(s.Props(), canvasesKey, func(c *Canvas) bool { return c.ID() == id })
}

func (s *Sequence) StartCanvas() *Ref {
	return track.Value(s.Props(), startCanvasKey)
}

func (s *Sequence) SetStartCanvas(r *Ref) {
	track.Set(s.Props(), startCanvasKey, r)
}

func (s *Sequence) ViewingDirection() string {
	return track.Value(s.Props(), viewingDirectionKey)
}

func (s *Sequence) SetViewingDirection(d string) {
	track.Set(s.Props(), viewingDirectionKey, d)
}

func (s *Sequence) ToIR() *ir.Node {
	return convert.Encode(Sequences, s)
}

type sequenceConverter struct{}

var Sequences convert.Converter[*Sequence] = sequenceConverter{}

func (sequenceConverter) Resource() string { return "Sequence" }

func (sequenceConverter) Create(n *ir.Node) (*Sequence, error) {
	s, err := createOptionalItem("Sequence", n)
	if err != nil {
		return nil, err
	}
	if err := requireType("Sequence", n); err != nil {
		return nil, err
	}
	if _, err := convert.Required("Sequence", n, canvasesKey.Name()); err != nil {
		return nil, err
	}
	item, desc := node(s)
	return &Sequence{Item: item, Descriptive: desc}, nil
}

func (sequenceConverter) Enrich(seq *Sequence, n *ir.Node) error {
	s := seq.Props()
	if err := enrichNode("Sequence", s, n); err != nil {
		return err
	}
	cs, err := decodeArray("Sequence", Canvases, n, canvasesKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, canvasesKey, cs)
	if err := enrichStartCanvas(s, n); err != nil {
		return err
	}
	enrichViewingDirection(s, n)
	return nil
}

func (sequenceConverter) Emit(seq *Sequence, o *convert.Object) {
	s := seq.Props()
	emitNode(s, o)
	// canvases is required, so an empty sequence still writes []
	o.Set("canvases", ir.FromSlice(convert.EncodeAll(Canvases, seq.Canvases())))
	o.Set("startCanvas", convert.Encode(Refs, seq.StartCanvas()))
	o.String("viewingDirection", seq.ViewingDirection())
}
