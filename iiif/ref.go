package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

var (
	formatKey  = track.NewKey[string]("format")
	profileKey = track.NewKey[string]("profile")
)

// Ref links to another resource: a logo, thumbnail, rendering, related
// page, seeAlso description, parent collection or annotation target. It is
// written as a bare URI when it carries nothing but an @id.
type Ref struct {
	Item
	scalar bool
}

// NewRef returns a link written as a bare URI.
func NewRef(id string) *Ref {
	s := track.NewStore()
	track.Set(s, idKey, id)
	return &Ref{Item: Item{props: s}, scalar: true}
}

// NewTypedRef returns a link written as an object.
func NewTypedRef(id, typ, format string) *Ref {
	r := &Ref{Item: newItem(track.NewStore(), id, typ)}
	track.Set(r.props, formatKey, format)
	return r
}

func (r *Ref) Format() string {
	return track.Value(r.props, formatKey)
}

func (r *Ref) SetFormat(f string) {
	track.Set(r.props, formatKey, f)
}

func (r *Ref) Profile() string {
	return profileOf(r.props)
}

func (r *Ref) SetProfile(p string) {
	track.Set(r.props, profileKey, p)
}

func (r *Ref) Label() string {
	return firstText(track.Value(r.props, labelKey))
}

func (r *Ref) SetLabels(ls ...*LangString) {
	track.Set(r.props, labelKey, ls)
}

func (r *Ref) ToIR() *ir.Node {
	return convert.Encode(Refs, r)
}

type refConverter struct{}

var Refs convert.Converter[*Ref] = refConverter{}

func (refConverter) Resource() string { return "Ref" }

func (refConverter) Create(n *ir.Node) (*Ref, error) {
	if n.Type == ir.StringType {
		return NewRef(n.String), nil
	}
	s, err := createOptionalItem("Ref", n)
	if err != nil {
		return nil, err
	}
	return &Ref{Item: Item{props: s}}, nil
}

func (refConverter) Enrich(r *Ref, n *ir.Node) error {
	if n.Type != ir.ObjectType {
		return nil
	}
	if err := enrichItem("Ref", r.props, n); err != nil {
		return err
	}
	if f, ok := convert.String(ir.Get(n, formatKey.Name())); ok {
		track.Set(r.props, formatKey, f)
	}
	if p, ok := convert.String(ir.Get(n, profileKey.Name())); ok {
		track.Set(r.props, profileKey, p)
	}
	ls, err := decodeLangStrings(n, labelKey.Name())
	if err != nil {
		return err
	}
	track.Set(r.props, labelKey, ls)
	return nil
}

func (refConverter) Emit(r *Ref, o *convert.Object) {
	emitItem(r.props, o)
	o.Set("label", emitLangStrings(track.Value(r.props, labelKey)))
	o.String("format", r.Format())
	o.String("profile", track.Value(r.props, profileKey))
}

func (refConverter) Scalar(r *Ref) *ir.Node {
	if !r.scalar {
		return nil
	}
	return scalarID(r.props)
}

func decodeRefs(n *ir.Node, field string) ([]*Ref, error) {
	return convert.DecodeAll(Refs, convert.OneOrMany(ir.Get(n, field)))
}

func decodeRef(n *ir.Node, field string) (*Ref, error) {
	v := ir.Get(n, field)
	if v == nil || v.Type == ir.NullType {
		return nil, nil
	}
	return convert.Decode(Refs, v)
}

func emitRefs(rs []*Ref) *ir.Node {
	return convert.Collapse(convert.EncodeAll(Refs, rs))
}

// profileOf returns the profile, or the first string of a profile array
// kept raw.
func profileOf(s *track.Store) string {
	if p, ok := track.Get(s, profileKey); ok {
		return p
	}
	raw, ok := s.Raw(profileKey.Name())
	if !ok {
		return ""
	}
	n, ok := raw.(*ir.Node)
	if !ok {
		return ""
	}
	for _, v := range convert.OneOrMany(n) {
		if p, ok := convert.String(v); ok {
			return p
		}
	}
	return ""
}
