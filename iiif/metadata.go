package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

var metadataValueKey = track.NewKey[[]*LangString]("value")

// Metadata is one label/value pair of a node's descriptive metadata.
type Metadata struct {
	props *track.Store
}

func NewMetadata(label string, values ...*LangString) *Metadata {
	m := &Metadata{props: track.NewStore()}
	track.Set(m.props, labelKey, []*LangString{Text(label)})
	track.Set(m.props, metadataValueKey, values)
	return m
}

func (m *Metadata) Props() *track.Store {
	return m.props
}

func (m *Metadata) Label() string {
	return firstText(track.Value(m.props, labelKey))
}

func (m *Metadata) Labels() []*LangString {
	return track.Value(m.props, labelKey)
}

func (m *Metadata) SetLabels(ls ...*LangString) {
	track.Set(m.props, labelKey, ls)
}

func (m *Metadata) Values() []*LangString {
	return track.Value(m.props, metadataValueKey)
}

// Value returns the first value's text.
func (m *Metadata) Value() string {
	return firstText(track.Value(m.props, metadataValueKey))
}

func (m *Metadata) SetValues(vs ...*LangString) {
	track.Set(m.props, metadataValueKey, vs)
}

func (m *Metadata) AddValue(vs ...*LangString) {
	track.Append(m.props, metadataValueKey, vs...)
}

// withValue returns a copy of m holding only v, keeping m's other fields.
func (m *Metadata) withValue(v *LangString) *Metadata {
	res := &Metadata{props: track.NewStore()}
	for _, k := range m.props.Keys() {
		raw, _ := m.props.Raw(k)
		if m.props.IsAdditional(k) {
			res.props.SetAdditional(k, raw)
			continue
		}
		if k == labelKey.Name() {
			track.Set(res.props, labelKey, raw.([]*LangString))
		}
	}
	track.Set(res.props, metadataValueKey, []*LangString{v})
	return res
}

func (m *Metadata) ToIR() *ir.Node {
	return convert.Encode(Metadatas, m)
}

type metadataConverter struct{}

var Metadatas convert.Converter[*Metadata] = metadataConverter{}

func (metadataConverter) Resource() string { return "Metadata" }

func (metadataConverter) Create(n *ir.Node) (*Metadata, error) {
	if n.Type != ir.ObjectType {
		return nil, convert.Shape("Metadata", n, "", ir.ObjectType)
	}
	return &Metadata{props: track.NewStore()}, nil
}

func (metadataConverter) Enrich(m *Metadata, n *ir.Node) error {
	ls, err := decodeLangStrings(n, labelKey.Name())
	if err != nil {
		return err
	}
	track.Set(m.props, labelKey, ls)
	vs, err := decodeLangStrings(n, metadataValueKey.Name())
	if err != nil {
		return err
	}
	track.Set(m.props, metadataValueKey, vs)
	return nil
}

func (metadataConverter) Emit(m *Metadata, o *convert.Object) {
	o.Set("label", emitLangStrings(m.Labels()))
	o.Set("value", emitLangStrings(m.Values()))
}
