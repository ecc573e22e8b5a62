package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

var (
	labelKey       = track.NewKey[[]*LangString]("label")
	descriptionKey = track.NewKey[[]*LangString]("description")
	metadataKey    = track.NewKey[[]*Metadata]("metadata")
	attributionKey = track.NewKey[[]*LangString]("attribution")
	licenseKey     = track.NewKey[[]string]("license")
	logoKey        = track.NewKey[[]*Ref]("logo")
	thumbnailKey   = track.NewKey[[]*Ref]("thumbnail")
	viewingHintKey = track.NewKey[string]("viewingHint")
	renderingKey   = track.NewKey[[]*Ref]("rendering")
	relatedKey     = track.NewKey[[]*Ref]("related")
	seeAlsoKey     = track.NewKey[[]*Ref]("seeAlso")
	withinKey      = track.NewKey[[]*Ref]("within")
)

// Descriptive is the capability set shared by presentation nodes: labels,
// descriptions, metadata, rights and related links.
type Descriptive struct {
	props *track.Store
}

// Label returns the first label's text.
func (d Descriptive) Label() string {
	return firstText(track.Value(d.props, labelKey))
}

func (d Descriptive) Labels() []*LangString {
	return track.Value(d.props, labelKey)
}

func (d Descriptive) SetLabels(ls ...*LangString) {
	track.Set(d.props, labelKey, ls)
}

func (d Descriptive) AddLabel(ls ...*LangString) {
	track.Append(d.props, labelKey, ls...)
}

func (d Descriptive) Description() string {
	return firstText(track.Value(d.props, descriptionKey))
}

func (d Descriptive) Descriptions() []*LangString {
	return track.Value(d.props, descriptionKey)
}

func (d Descriptive) SetDescriptions(ls ...*LangString) {
	track.Set(d.props, descriptionKey, ls)
}

func (d Descriptive) AddDescription(ls ...*LangString) {
	track.Append(d.props, descriptionKey, ls...)
}

func (d Descriptive) Metadata() []*Metadata {
	return track.Value(d.props, metadataKey)
}

func (d Descriptive) SetMetadataEntries(ms ...*Metadata) {
	track.Set(d.props, metadataKey, ms)
}

func (d Descriptive) AddMetadata(ms ...*Metadata) {
	track.Append(d.props, metadataKey, ms...)
}

// SetMetadata replaces the values of the entry labelled label, adding the
// entry if there is none.
func (d Descriptive) SetMetadata(label, value, lang string) {
	track.Update(d.props, metadataKey, func(ms []*Metadata) []*Metadata {
		for i, m := range ms {
			if m.Label() == label {
				next := make([]*Metadata, len(ms))
				copy(next, ms)
				next[i] = m.withValue(NewLangString(value, lang))
				return next
			}
		}
		next := make([]*Metadata, 0, len(ms)+1)
		next = append(next, ms...)
		return append(next, NewMetadata(label, NewLangString(value, lang)))
	})
}

// MetadataValues returns the texts of the entry labelled label.
func (d Descriptive) MetadataValues(label string) []string {
	for _, m := range track.Value(d.props, metadataKey) {
		if m.Label() != label {
			continue
		}
		var res []string
		for _, v := range m.Values() {
			res = append(res, v.Value())
		}
		return res
	}
	return nil
}

func (d Descriptive) Attribution() string {
	return firstText(track.Value(d.props, attributionKey))
}

func (d Descriptive) Attributions() []*LangString {
	return track.Value(d.props, attributionKey)
}

func (d Descriptive) SetAttributions(ls ...*LangString) {
	track.Set(d.props, attributionKey, ls)
}

func (d Descriptive) Licenses() []string {
	return track.Value(d.props, licenseKey)
}

func (d Descriptive) SetLicenses(ls ...string) {
	track.Set(d.props, licenseKey, ls)
}

func (d Descriptive) Logos() []*Ref {
	return track.Value(d.props, logoKey)
}

func (d Descriptive) SetLogos(rs ...*Ref) {
	track.Set(d.props, logoKey, rs)
}

func (d Descriptive) Thumbnails() []*Ref {
	return track.Value(d.props, thumbnailKey)
}

func (d Descriptive) SetThumbnails(rs ...*Ref) {
	track.Set(d.props, thumbnailKey, rs)
}

func (d Descriptive) AddThumbnail(rs ...*Ref) {
	track.Append(d.props, thumbnailKey, rs...)
}

func (d Descriptive) ViewingHint() string {
	return track.Value(d.props, viewingHintKey)
}

func (d Descriptive) SetViewingHint(h string) {
	track.Set(d.props, viewingHintKey, h)
}

func (d Descriptive) Renderings() []*Ref {
	return track.Value(d.props, renderingKey)
}

func (d Descriptive) AddRendering(rs ...*Ref) {
	track.Append(d.props, renderingKey, rs...)
}

func (d Descriptive) Related() []*Ref {
	return track.Value(d.props, relatedKey)
}

func (d Descriptive) AddRelated(rs ...*Ref) {
	track.Append(d.props, relatedKey, rs...)
}

func (d Descriptive) SeeAlso() []*Ref {
	return track.Value(d.props, seeAlsoKey)
}

func (d Descriptive) AddSeeAlso(rs ...*Ref) {
	track.Append(d.props, seeAlsoKey, rs...)
}

func (d Descriptive) Within() []*Ref {
	return track.Value(d.props, withinKey)
}

func (d Descriptive) AddWithin(rs ...*Ref) {
	track.Append(d.props, withinKey, rs...)
}

func enrichDescriptive(resource string, s *track.Store, n *ir.Node) error {
	for _, k := range []track.Key[[]*LangString]{labelKey, descriptionKey, attributionKey} {
		ls, err := decodeLangStrings(n, k.Name())
		if err != nil {
			return err
		}
		track.Set(s, k, ls)
	}
	mds, err := convert.ArrayField(resource, n, metadataKey.Name())
	if err != nil {
		return err
	}
	ms, err := convert.DecodeAll(Metadatas, mds)
	if err != nil {
		return err
	}
	track.Set(s, metadataKey, ms)
	if ls, ok := stringsField(n, licenseKey.Name()); ok {
		track.Set(s, licenseKey, ls)
	}
	if h, ok := convert.String(ir.Get(n, viewingHintKey.Name())); ok {
		track.Set(s, viewingHintKey, h)
	}
	for _, k := range []track.Key[[]*Ref]{logoKey, thumbnailKey, renderingKey, relatedKey, seeAlsoKey, withinKey} {
		rs, err := decodeRefs(n, k.Name())
		if err != nil {
			return err
		}
		track.Set(s, k, rs)
	}
	return nil
}

func emitDescriptive(s *track.Store, o *convert.Object) {
	o.Set("label", emitLangStrings(track.Value(s, labelKey)))
	o.Set("description", emitLangStrings(track.Value(s, descriptionKey)))
	o.Set("metadata", convert.Always(convert.EncodeAll(Metadatas, track.Value(s, metadataKey))))
	o.Set("attribution", emitLangStrings(track.Value(s, attributionKey)))
	o.Set("license", convert.Collapse(convert.Strings(track.Value(s, licenseKey))))
	o.Set("logo", emitRefs(track.Value(s, logoKey)))
	o.Set("thumbnail", emitRefs(track.Value(s, thumbnailKey)))
	o.String("viewingHint", track.Value(s, viewingHintKey))
	o.Set("rendering", emitRefs(track.Value(s, renderingKey)))
	o.Set("related", emitRefs(track.Value(s, relatedKey)))
	o.Set("seeAlso", emitRefs(track.Value(s, seeAlsoKey)))
	o.Set("within", emitRefs(track.Value(s, withinKey)))
}

// stringsField reads a field holding one or more strings. It reports false
// if the field is absent or holds anything else, leaving it to
// passthrough.
func stringsField(n *ir.Node, field string) ([]string, bool) {
	vs := convert.OneOrMany(ir.Get(n, field))
	if len(vs) == 0 {
		return nil, false
	}
	res := make([]string, 0, len(vs))
	for _, v := range vs {
		s, ok := convert.String(v)
		if !ok {
			return nil, false
		}
		res = append(res, s)
	}
	return res, true
}
