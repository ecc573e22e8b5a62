package iiif

import (
	"time"

	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

var (
	navDateKey    = track.NewKey[time.Time]("navDate")
	sequencesKey  = track.NewKey[[]*Sequence]("sequences")
	structuresKey = track.NewKey[[]*Range]("structures")
	startKey      = track.NewKey[*Ref]("start")
)

// Manifest describes a single object and how to present it.
type Manifest struct {
	Item
	Descriptive
}

// NewManifest returns a manifest carrying the default context.
func NewManifest(id, label string) *Manifest {
	s := newNode(id, TypeManifest, label)
	track.Set(s, contextKey, []string{DefaultContext})
	item, desc := node(s)
	return &Manifest{Item: item, Descriptive: desc}
}

func (m *Manifest) NavDate() (time.Time, bool) {
	return track.Get(m.Props(), navDateKey)
}

func (m *Manifest) SetNavDate(t time.Time) {
	track.Set(m.Props(), navDateKey, t)
}

func (m *Manifest) ViewingDirection() string {
	return track.Value(m.Props(), viewingDirectionKey)
}

func (m *Manifest) SetViewingDirection(d string) {
	track.Set(m.Props(), viewingDirectionKey, d)
}

func (m *Manifest) Sequences() []*Sequence {
	return track.Value(m.Props(), sequencesKey)
}

func (m *Manifest) SetSequences(ss ...*Sequence) {
	track.Set(m.Props(), sequencesKey, ss)
}

func (m *Manifest) AddSequence(ss ...*Sequence) {
	track.Append(m.Props(), sequencesKey, ss...)
}

// Structures returns the ranges of the manifest.
func (m *Manifest) Structures() []*Range {
	return track.Value(m.Props(), structuresKey)
}

func (m *Manifest) AddStructure(rs ...*Range) {
	track.Append(m.Props(), structuresKey, rs...)
}

func (m *Manifest) RemoveStructure(id string) {
	track.Remove(m.Props(), structuresKey, func(r *Range) bool { return r.ID() == id })
}

func (m *Manifest) Start() *Ref {
	return track.Value(m.Props(), startKey)
}

func (m *Manifest) SetStart(r *Ref) {
	track.Set(m.Props(), startKey, r)
}

// Canvases returns the canvases of all sequences in order.
func (m *Manifest) Canvases() []*Canvas {
	var res []*Canvas
	for _, s := range m.Sequences() {
		res = append(res, s.Canvases()...)
	}
	return res
}

// Canvas returns the canvas with the given id.
func (m *Manifest) Canvas(id string) *Canvas {
	for _, c := range m.Canvases() {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

func (m *Manifest) ToIR() *ir.Node {
	return convert.Encode(Manifests, m)
}

type manifestConverter struct{}

var Manifests convert.Converter[*Manifest] = manifestConverter{}

func (manifestConverter) Resource() string { return "Manifest" }

func (manifestConverter) Create(n *ir.Node) (*Manifest, error) {
	s, err := createItem("Manifest", n)
	if err != nil {
		return nil, err
	}
	if err := requireType("Manifest", n); err != nil {
		return nil, err
	}
	item, desc := node(s)
	return &Manifest{Item: item, Descriptive: desc}, nil
}

func (manifestConverter) Enrich(m *Manifest, n *ir.Node) error {
	s := m.Props()
	if err := enrichNode("Manifest", s, n); err != nil {
		return err
	}
	if t, ok := convert.Time(ir.Get(n, navDateKey.Name())); ok {
		track.Set(s, navDateKey, t)
	}
	enrichViewingDirection(s, n)
	seqs, err := decodeArray("Manifest", Sequences, n, sequencesKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, sequencesKey, seqs)
	structs, err := decodeArray("Manifest", Ranges, n, structuresKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, structuresKey, structs)
	start, err := decodeRef(n, startKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, startKey, start)
	return nil
}

func (manifestConverter) Emit(m *Manifest, o *convert.Object) {
	s := m.Props()
	emitNode(s, o)
	o.Set("navDate", convert.FromTime(track.Value(s, navDateKey)))
	o.String("viewingDirection", m.ViewingDirection())
	o.Set("sequences", convert.Always(convert.EncodeAll(Sequences, m.Sequences())))
	o.Set("structures", convert.Always(convert.EncodeAll(Ranges, m.Structures())))
	o.Set("start", convert.Encode(Refs, m.Start()))
}
