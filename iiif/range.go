package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

var (
	rangeCanvasesKey = track.NewKey[[]string]("canvases")
	rangesKey        = track.NewKey[[]string]("ranges")
	membersKey       = track.NewKey[[]*Ref]("members")
	contentLayerKey  = track.NewKey[*Ref]("contentLayer")
)

// Range is a structural division of a manifest such as a chapter. Canvases
// and sub-ranges are referenced by @id.
type Range struct {
	Item
	Descriptive
}

func NewRange(id, label string) *Range {
	return rangeOf(newNode(id, TypeRange, label))
}

func rangeOf(s *track.Store) *Range {
	item, desc := node(s)
	return &Range{Item: item, Descriptive: desc}
}

func (r *Range) Canvases() []string {
	return track.Value(r.Props(), rangeCanvasesKey)
}

func (r *Range) AddCanvas(ids ...string) {
	track.Append(r.Props(), rangeCanvasesKey, ids...)
}

func (r *Range) Ranges() []string {
	return track.Value(r.Props(), rangesKey)
}

func (r *Range) AddRange(ids ...string) {
	track.Append(r.Props(), rangesKey, ids...)
}

func (r *Range) Members() []*Ref {
	return track.Value(r.Props(), membersKey)
}

func (r *Range) AddMember(rs ...*Ref) {
	track.Append(r.Props(), membersKey, rs...)
}

func (r *Range) StartCanvas() *Ref {
	return track.Value(r.Props(), startCanvasKey)
}

func (r *Range) SetStartCanvas(ref *Ref) {
	track.Set(r.Props(), startCanvasKey, ref)
}

func (r *Range) ContentLayer() *Ref {
	return track.Value(r.Props(), contentLayerKey)
}

func (r *Range) SetContentLayer(ref *Ref) {
	track.Set(r.Props(), contentLayerKey, ref)
}

func (r *Range) ViewingDirection() string {
	return track.Value(r.Props(), viewingDirectionKey)
}

func (r *Range) SetViewingDirection(d string) {
	track.Set(r.Props(), viewingDirectionKey, d)
}

func (r *Range) ToIR() *ir.Node {
	return convert.Encode(Ranges, r)
}

type rangeConverter struct{}

var Ranges convert.Converter[*Range] = rangeConverter{}

func (rangeConverter) Resource() string { return "Range" }

func (rangeConverter) Create(n *ir.Node) (*Range, error) {
	s, err := createItem("Range", n)
	if err != nil {
		return nil, err
	}
	if err := requireType("Range", n); err != nil {
		return nil, err
	}
	return rangeOf(s), nil
}

func (rangeConverter) Enrich(r *Range, n *ir.Node) error {
	s := r.Props()
	if err := enrichNode("Range", s, n); err != nil {
		return err
	}
	cs, err := decodeURIs("Range", n, rangeCanvasesKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, rangeCanvasesKey, cs)
	rs, err := decodeURIs("Range", n, rangesKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, rangesKey, rs)
	ms, err := decodeArray("Range", Refs, n, membersKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, membersKey, ms)
	if err := enrichStartCanvas(s, n); err != nil {
		return err
	}
	layer, err := decodeRef(n, contentLayerKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, contentLayerKey, layer)
	enrichViewingDirection(s, n)
	return nil
}

func (rangeConverter) Emit(r *Range, o *convert.Object) {
	emitNode(r.Props(), o)
	o.Set("canvases", convert.Always(convert.Strings(r.Canvases())))
	o.Set("ranges", convert.Always(convert.Strings(r.Ranges())))
	o.Set("members", convert.Always(convert.EncodeAll(Refs, r.Members())))
	o.Set("startCanvas", convert.Encode(Refs, r.StartCanvas()))
	o.Set("contentLayer", convert.Encode(Refs, r.ContentLayer()))
	o.String("viewingDirection", r.ViewingDirection())
}
