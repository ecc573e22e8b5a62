package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/iiif"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/parse"

	"github.com/scott-cotton/cli"
)

const twoPages = `{"@id":"https://example.org/m","@type":"sc:Manifest","label":"Book",` +
	`"sequences":[{"@type":"sc:Sequence","canvases":[` +
	`{"@id":"https://example.org/c1","@type":"sc:Canvas","label":"p. 1","height":1000,"width":750},` +
	`{"@id":"https://example.org/c2","@type":"sc:Canvas","label":"p. 2","height":1000,"width":1500,"images":[` +
	`{"@type":"oa:Annotation","motivation":"sc:painting","resource":{"@id":"https://example.org/i2.jpg","@type":"dctypes:Image","format":"image/jpeg"},"on":"https://example.org/c2"}]}]}]}`

func TestSelectCanvases(t *testing.T) {
	m, err := iiif.ParseManifest([]byte(twoPages))
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		expr string
		want []string
	}{
		{"", []string{"https://example.org/c1", "https://example.org/c2"}},
		{"width > height", []string{"https://example.org/c2"}},
		{"images == 0", []string{"https://example.org/c1"}},
		{`label == "p. 1" && height == 1000`, []string{"https://example.org/c1"}},
		{`id endsWith "c3"`, nil},
	} {
		t.Run(tc.expr, func(t *testing.T) {
			prg, err := compileSelect(tc.expr)
			if err != nil {
				t.Fatal(err)
			}
			cs, err := selectCanvases(m, prg)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, c := range cs {
				got = append(got, c.ID())
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileSelectRejects(t *testing.T) {
	for _, code := range []string{"width +", "width", "pages > 1"} {
		if _, err := compileSelect(code); err == nil {
			t.Errorf("%q compiled", code)
		}
	}
}

func TestListCanvases(t *testing.T) {
	m, err := iiif.ParseManifest([]byte(twoPages))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := listCanvases(&buf, m, nil); err != nil {
		t.Fatal(err)
	}
	want := "https://example.org/c1\t750x1000\tp. 1\nhttps://example.org/c2\t1500x1000\tp. 2\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCheckDoc(t *testing.T) {
	cfg := &CheckConfig{MainConfig: &MainConfig{}}
	var buf bytes.Buffer
	ok, err := checkDoc(cfg, &buf, "two", []byte(twoPages))
	if err != nil || !ok {
		t.Fatalf("check = %t %v\n%s", ok, err, buf.String())
	}
	if buf.String() != "two: ok\n" {
		t.Errorf("got %q", buf.String())
	}

	reordered := `{"@type":"sc:Manifest","label":"Book","@id":"https://example.org/m","x":2.50}`
	buf.Reset()
	ok, err = checkDoc(cfg, &buf, "r", []byte(reordered))
	if err != nil || !ok {
		t.Fatalf("check = %t %v\n%s", ok, err, buf.String())
	}

	_, err = checkDoc(cfg, &buf, "bad", []byte(`{"@id":"m","@type":"sc:Manifest","sequences":[{"@type":"sc:Sequence","canvases":[{"@id":"c","@type":"sc:Canvas","height":1,"width":1}]}]}`))
	if !errors.Is(err, convert.ErrRequiredField) {
		t.Errorf("error = %v", err)
	}
}

func TestApplyPatch(t *testing.T) {
	p := `[{"op":"replace","path":"/label","value":"Volume 1"},{"op":"remove","path":"/sequences/0/canvases/1"}]`
	res, err := applyPatch([]byte(p), []byte(twoPages))
	if err != nil {
		t.Fatal(err)
	}
	_, r, err := parseDoc(res)
	if err != nil {
		t.Fatal(err)
	}
	m := r.(*iiif.Manifest)
	if m.Label() != "Volume 1" || len(m.Canvases()) != 1 {
		t.Errorf("label %q canvases %d", m.Label(), len(m.Canvases()))
	}

	// removing a required field leaves a document that does not decode
	res, err = applyPatch([]byte(`[{"op":"remove","path":"/sequences/0/canvases/0/label"}]`), []byte(twoPages))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := parseDoc(res); !errors.Is(err, convert.ErrRequiredField) {
		t.Errorf("error = %v", err)
	}

	if _, err := applyPatch([]byte(`{"op":"add"}`), []byte(twoPages)); err == nil {
		t.Errorf("bad patch accepted")
	}
}

func TestMergePatch(t *testing.T) {
	cfg := &DiffConfig{MainConfig: &MainConfig{WireOut: true}}
	var buf bytes.Buffer
	a := `{"@id":"m","@type":"sc:Manifest","label":"Book","x":1}`
	b := `{"@id":"m","@type":"sc:Manifest","label":"Volume","y":true}`
	if err := mergePatch(cfg, &buf, []byte(a), []byte(b)); err != nil {
		t.Fatal(err)
	}
	n, err := parse.Parse(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	want, _ := parse.Parse([]byte(`{"label":"Volume","x":null,"y":true}`))
	if !ir.Equivalent(want, n) {
		t.Errorf("got %s", buf.String())
	}
}

func TestYAML(t *testing.T) {
	n, err := parse.Parse([]byte(`{"@id":"m","@type":"sc:Manifest","label":"Book","n":[1,2.5,true,null]}`))
	if err != nil {
		t.Fatal(err)
	}
	d, err := toYAML(n)
	if err != nil {
		t.Fatal(err)
	}
	got := string(d)
	for _, want := range []string{"@id", "label: Book", "- 1", "- 2.5", "- true", "- null"} {
		if !strings.Contains(got, want) {
			t.Errorf("%q missing from\n%s", want, got)
		}
	}
	if strings.Index(got, "@id") > strings.Index(got, "label") {
		t.Errorf("field order lost:\n%s", got)
	}
}

func TestParseCanvasSize(t *testing.T) {
	sz, err := parseCanvasSize("750x1000")
	if err != nil || sz != (canvasSize{Width: 750, Height: 1000}) {
		t.Errorf("got %v %v", sz, err)
	}
	for _, bad := range []string{"750", "x1000", "0x10", "ax1"} {
		if _, err := parseCanvasSize(bad); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%q: error = %v", bad, err)
		}
	}
}

func TestScaffold(t *testing.T) {
	m := scaffold("https://example.org/iiif/", "Atlas", []canvasSize{{100, 200}, {300, 400}})
	if !strings.HasPrefix(m.ID(), "https://example.org/iiif/") || !strings.HasSuffix(m.ID(), "/manifest") {
		t.Errorf("id %s", m.ID())
	}
	cs := m.Canvases()
	if len(cs) != 2 {
		t.Fatalf("canvases %d", len(cs))
	}
	root := strings.TrimSuffix(m.ID(), "/manifest")
	if cs[1].ID() != root+"/canvas/p2" || cs[1].Label() != "p. 2" {
		t.Errorf("canvas %s %q", cs[1].ID(), cs[1].Label())
	}
	if h, _ := cs[0].Height(); h != 200 {
		t.Errorf("height %d", h)
	}
	if other := scaffold("https://example.org/iiif", "Atlas", nil); other.ID() == m.ID() {
		t.Errorf("ids not minted per manifest")
	}
	d, err := iiif.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := iiif.ParseManifest(d); err != nil {
		t.Errorf("scaffold does not decode: %v", err)
	}
}
