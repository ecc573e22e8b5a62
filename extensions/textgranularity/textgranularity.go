// Package textgranularity implements the textGranularity extension, which
// tells a viewer the level of segmentation of the text an annotation or
// image resource carries.
package textgranularity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

// Name is the property the extension lives under.
const Name = "textGranularity"

type Granularity string

const (
	Page      Granularity = "page"
	Block     Granularity = "block"
	Paragraph Granularity = "paragraph"
	Line      Granularity = "line"
	Word      Granularity = "word"
	Glyph     Granularity = "glyph"
	Character Granularity = "character"
)

var known = []Granularity{Page, Block, Paragraph, Line, Word, Glyph, Character}

var ErrUnknown = errors.New("unknown text granularity")

// Parse returns the granularity named by s, ignoring case.
func Parse(s string) (Granularity, error) {
	g := Granularity(strings.ToLower(s))
	for _, k := range known {
		if g == k {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknown, s)
}

func (g Granularity) ToIR() *ir.Node {
	return ir.FromString(string(g))
}

// Set stores g on t. An empty g clears it.
func Set(t track.Trackable, g Granularity) {
	if g == "" {
		t.Props().Clear(Name)
		return
	}
	t.Props().SetAdditional(Name, g)
}

// Get returns the granularity of t. A decoded string value is parsed and
// stored back in typed form.
func Get(t track.Trackable) (Granularity, bool, error) {
	s := t.Props()
	raw, ok := s.Raw(Name)
	if !ok {
		return "", false, nil
	}
	switch v := raw.(type) {
	case Granularity:
		return v, true, nil
	case *ir.Node:
		if v.Type != ir.StringType {
			return "", false, fmt.Errorf("extension %s at %s: %w", Name, v.Path(), ErrUnknown)
		}
		g, err := Parse(v.String)
		if err != nil {
			return "", false, fmt.Errorf("extension %s: %w", Name, err)
		}
		if string(g) == v.String {
			s.SetAdditional(Name, g)
		}
		return g, true, nil
	}
	return "", false, fmt.Errorf("extension %s: unexpected value %T", Name, raw)
}
