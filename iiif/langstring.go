package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

var (
	valueKey    = track.NewKey[string]("@value")
	languageKey = track.NewKey[string]("@language")
)

// LangString is a text value, written either as a bare string or as
// {"@value": ..., "@language": ...}.
type LangString struct {
	props *track.Store
	// scalar records that the value was a bare string.
	scalar bool
}

// NewLangString returns a text value; without a language it is written as
// a bare string.
func NewLangString(value, lang string) *LangString {
	l := &LangString{props: track.NewStore(), scalar: lang == ""}
	track.Set(l.props, valueKey, value)
	track.Set(l.props, languageKey, lang)
	return l
}

// Text is NewLangString without a language.
func Text(value string) *LangString {
	return NewLangString(value, "")
}

func (l *LangString) Props() *track.Store {
	return l.props
}

func (l *LangString) Value() string {
	return track.Value(l.props, valueKey)
}

func (l *LangString) Language() string {
	return track.Value(l.props, languageKey)
}

func (l *LangString) SetValue(v string) {
	track.Set(l.props, valueKey, v)
}

func (l *LangString) SetLanguage(lang string) {
	track.Set(l.props, languageKey, lang)
}

func (l *LangString) ToIR() *ir.Node {
	return convert.Encode(LangStrings, l)
}

type langStringConverter struct{}

var LangStrings convert.Converter[*LangString] = langStringConverter{}

func (langStringConverter) Resource() string { return "LangString" }

func (langStringConverter) Create(n *ir.Node) (*LangString, error) {
	switch n.Type {
	case ir.StringType:
		l := &LangString{props: track.NewStore(), scalar: true}
		track.Set(l.props, valueKey, n.String)
		return l, nil
	case ir.ObjectType:
		v, err := convert.RequiredString("LangString", n, valueKey.Name())
		if err != nil {
			return nil, err
		}
		l := &LangString{props: track.NewStore()}
		track.Set(l.props, valueKey, v)
		return l, nil
	}
	return nil, convert.Shape("LangString", n, "", ir.StringType)
}

func (langStringConverter) Enrich(l *LangString, n *ir.Node) error {
	if lang, ok := convert.String(ir.Get(n, languageKey.Name())); ok {
		track.Set(l.props, languageKey, lang)
	}
	return nil
}

// Emit always writes @value, which decoding requires, even when empty.
func (langStringConverter) Emit(l *LangString, o *convert.Object) {
	o.Set("@value", ir.FromString(l.Value()))
	o.String("@language", l.Language())
}

// Scalar writes a bare string when only the value is set. The empty
// string stores nothing, so an empty store is the value "".
func (langStringConverter) Scalar(l *LangString) *ir.Node {
	if !l.scalar {
		return nil
	}
	switch {
	case l.props.Len() == 0:
		return ir.FromString("")
	case l.props.Len() == 1 && l.props.Has(valueKey.Name()):
		return ir.FromString(l.Value())
	}
	return nil
}

func decodeLangStrings(n *ir.Node, field string) ([]*LangString, error) {
	return convert.DecodeAll(LangStrings, convert.OneOrMany(ir.Get(n, field)))
}

func emitLangStrings(ls []*LangString) *ir.Node {
	return convert.Collapse(convert.EncodeAll(LangStrings, ls))
}

func firstText(ls []*LangString) string {
	if len(ls) == 0 {
		return ""
	}
	return ls[0].Value()
}
