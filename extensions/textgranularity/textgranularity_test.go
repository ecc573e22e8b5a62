package textgranularity_test

import (
	"errors"
	"testing"

	"github.com/signadot/go-iiif/encode"
	"github.com/signadot/go-iiif/extensions/textgranularity"
	"github.com/signadot/go-iiif/iiif"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want textgranularity.Granularity
		err  bool
	}{
		{in: "page", want: textgranularity.Page},
		{in: "Line", want: textgranularity.Line},
		{in: "glyph", want: textgranularity.Glyph},
		{in: "character", want: textgranularity.Character},
		{in: "sentence", err: true},
		{in: "", err: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := textgranularity.Parse(tc.in)
			if tc.err {
				if !errors.Is(err, textgranularity.ErrUnknown) {
					t.Errorf("error = %v", err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Errorf("got %q %v", got, err)
			}
		})
	}
}

func TestOnAnnotation(t *testing.T) {
	in := `{"@id":"m","@type":"sc:Manifest","sequences":[{"@type":"sc:Sequence","canvases":[{"@id":"c","@type":"sc:Canvas","label":"p","height":10,"width":10,"images":[{"@type":"oa:Annotation","motivation":"sc:painting","resource":{"@id":"r.jpg","@type":"dctypes:Image","format":"image/jpeg"},"on":"c","textGranularity":"line"}]}]}]}`
	m, err := iiif.ParseManifest([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	a := m.Canvases()[0].Images()[0]
	g, ok, err := textgranularity.Get(a)
	if err != nil || !ok || g != textgranularity.Line {
		t.Fatalf("Get = %q %t %v", g, ok, err)
	}
	if a.Props().IsModified(textgranularity.Name) {
		t.Errorf("reading marked it modified")
	}
	textgranularity.Set(a, textgranularity.Word)
	if !a.Props().IsModified(textgranularity.Name) {
		t.Errorf("change not tracked")
	}
	textgranularity.Set(a, textgranularity.Line)
	if a.Props().IsModified(textgranularity.Name) {
		t.Errorf("restored value still modified")
	}
	if got := encode.MustString(m.ToIR(), encode.EncodeWire(true)); got != in {
		t.Errorf("got %s", got)
	}
	textgranularity.Set(a, "")
	if _, ok, _ := textgranularity.Get(a); ok {
		t.Errorf("cleared value still present")
	}
}

func TestGetInvalid(t *testing.T) {
	for _, in := range []string{
		`{"@id":"m","@type":"sc:Manifest","textGranularity":"sentence"}`,
		`{"@id":"m","@type":"sc:Manifest","textGranularity":3}`,
	} {
		m, err := iiif.ParseManifest([]byte(in))
		if err != nil {
			t.Fatal(err)
		}
		if _, _, err := textgranularity.Get(m); !errors.Is(err, textgranularity.ErrUnknown) {
			t.Errorf("%s: error = %v", in, err)
		}
	}
}
