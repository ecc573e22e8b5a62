package iiif

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/encode"
	"github.com/signadot/go-iiif/track"
)

func TestCanvasRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		field string
		path  string
		err   error
	}{
		{
			name:  "missing id",
			in:    `{"@type":"sc:Canvas","label":"p","height":1,"width":1}`,
			field: "@id",
			path:  "$.sequences[0].canvases[0].@id",
			err:   convert.ErrRequiredField,
		},
		{
			name:  "missing height",
			in:    `{"@id":"c","@type":"sc:Canvas","label":"p","width":1}`,
			field: "height",
			path:  "$.sequences[0].canvases[0].height",
			err:   convert.ErrRequiredField,
		},
		{
			name:  "missing width",
			in:    `{"@id":"c","@type":"sc:Canvas","label":"p","height":1}`,
			field: "width",
			path:  "$.sequences[0].canvases[0].width",
			err:   convert.ErrRequiredField,
		},
		{
			name:  "missing label",
			in:    `{"@id":"c","@type":"sc:Canvas","height":1,"width":1}`,
			field: "label",
			path:  "$.sequences[0].canvases[0].label",
			err:   convert.ErrRequiredField,
		},
		{
			name:  "string height",
			in:    `{"@id":"c","@type":"sc:Canvas","label":"p","height":"1","width":1}`,
			field: "height",
			path:  "$.sequences[0].canvases[0].height",
			err:   convert.ErrShape,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `{"@id":"m","@type":"sc:Manifest","sequences":[{"@type":"sc:Sequence","canvases":[` + tt.in + `]}]}`
			m, err := ParseManifest([]byte(doc))
			if m != nil {
				t.Errorf("got a manifest with error %v", err)
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("error = %v, want %v", err, tt.err)
			}
			var de *convert.DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("error %T is not a DecodeError", err)
			}
			if de.Resource != "Canvas" || de.Field != tt.field || de.Path != tt.path {
				t.Errorf("got %s %q %s", de.Resource, de.Field, de.Path)
			}
		})
	}
}

func TestOtherRequiredFields(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		resource string
		field    string
	}{
		{"sequence canvases", `{"@id":"m","@type":"sc:Manifest","sequences":[{"@id":"s","@type":"sc:Sequence"}]}`, "Sequence", "canvases"},
		{"annotation on", `{"@id":"m","@type":"sc:Manifest","sequences":[{"@type":"sc:Sequence","canvases":[{"@id":"c","@type":"sc:Canvas","label":"p","height":1,"width":1,"images":[{"@type":"oa:Annotation","resource":"r"}]}]}]}`, "Annotation", "on"},
		{"image format", `{"@id":"m","@type":"sc:Manifest","sequences":[{"@type":"sc:Sequence","canvases":[{"@id":"c","@type":"sc:Canvas","label":"p","height":1,"width":1,"images":[{"@type":"oa:Annotation","on":"c","resource":{"@id":"r","@type":"dctypes:Image"}}]}]}]}`, "Resource", "format"},
		{"manifest id", `{"@type":"sc:Manifest","label":"x"}`, "Manifest", "@id"},
		{"manifest type", `{"@id":"m1","label":"x"}`, "Manifest", "@type"},
		{"sequence type", `{"@id":"m","@type":"sc:Manifest","sequences":[{"@type":"sc:Sequence","canvases":[]}]}`, "Sequence", "@type"},
		{"canvas type", `{"@id":"m","@type":"sc:Manifest","sequences":[{"@type":"sc:Sequence","canvases":[{"@id":"c1","@type":"sc:Canvas","label":"P","height":1,"width":2}]}]}`, "Canvas", "@type"},
		{"annotation type", `{"@id":"m","@type":"sc:Manifest","sequences":[{"@type":"sc:Sequence","canvases":[{"@id":"c","@type":"sc:Canvas","label":"p","height":1,"width":1,"images":[{"resource":"r","on":"c"}]}]}]}`, "Annotation", "@type"},
		{"range type", `{"@id":"m","@type":"sc:Manifest","structures":[{"@id":"r1","label":"Intro"}]}`, "Range", "@type"},
		{"image service id", `{"@id":"m","@type":"sc:Manifest","service":{"profile":"http://iiif.io/api/image/2/level1.json"}}`, "ImageService", "@id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.in))
			var de *convert.DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("error = %v", err)
			}
			if de.Resource != tt.resource || de.Field != tt.field {
				t.Errorf("got %s %q at %s", de.Resource, de.Field, de.Path)
			}
		})
	}
}

func TestCanvasChangeTracking(t *testing.T) {
	m, err := ParseManifest([]byte(smallManifest))
	if err != nil {
		t.Fatal(err)
	}
	c := m.Canvas("c1")
	props := c.Props()
	if len(props.Changes()) != 0 {
		t.Fatalf("decoded canvas has changes %v", props.Changes())
	}

	var events []track.Event
	stop := props.Observe(func(e track.Event) { events = append(events, e) })
	c.SetHeight(200)
	stop()
	c.SetWidth(90)

	if h, _ := c.Height(); h != 200 {
		t.Errorf("height = %d", h)
	}
	if !props.IsModified("height") {
		t.Errorf("height not modified")
	}
	if orig, ok := track.Original(props, heightKey); !ok || orig != 100 {
		t.Errorf("original height = %d %t", orig, ok)
	}
	want := []track.Event{
		{Kind: track.Changing, Key: "height", Old: 100, New: 200},
		{Kind: track.Changed, Key: "height", Old: 100, New: 200},
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
	wantChanges := []track.Change{
		{Key: "height", Original: 100, Value: 200},
		{Key: "width", Original: 80, Value: 90},
	}
	if diff := cmp.Diff(wantChanges, props.Changes()); diff != "" {
		t.Errorf("changes (-want +got):\n%s", diff)
	}

	c.SetHeight(100)
	if props.IsModified("height") {
		t.Errorf("height modified after restoring the original")
	}

	out, err := ParseManifest([]byte(mustWire(m)))
	if err != nil {
		t.Fatal(err)
	}
	if w, _ := out.Canvas("c1").Width(); w != 90 {
		t.Errorf("encoded width = %d", w)
	}
}

func TestCanvasLabelClear(t *testing.T) {
	c := NewCanvas("c", "p", 1, 2)
	c.SetLabels()
	if c.Props().Has("label") {
		t.Errorf("empty labels kept")
	}
	c.SetLabels(NewLangString("Seite 1", "de"), Text("Page 1"))
	if c.Label() != "Seite 1" {
		t.Errorf("label %q", c.Label())
	}
	got := mustWire(c)
	want := `{"@id":"c","@type":"sc:Canvas","label":[{"@value":"Seite 1","@language":"de"},"Page 1"],"height":1,"width":2}`
	if got != want {
		t.Errorf("got %s", got)
	}
}

func mustWire(r Resource) string {
	return encode.MustString(r.ToIR(), encode.EncodeWire(true))
}
