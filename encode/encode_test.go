package encode

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/parse"
)

func TestEncodeIndented(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "@id", Val: ir.FromString("m1")},
		{Key: "sizes", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromFloat(2.5)})},
		{Key: "empty", Val: ir.FromSlice(nil)},
		{Key: "obj", Val: ir.FromKeyVals(nil)},
		{Key: "ok", Val: ir.FromBool(true)},
		{Key: "none", Val: ir.Null()},
	})
	want := `{
  "@id": "m1",
  "sizes": [
    1,
    2.5
  ],
  "empty": [],
  "obj": {},
  "ok": true,
  "none": null
}`
	if diff := cmp.Diff(want, MustString(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeWire(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromString("x")})},
		{Key: "b", Val: ir.FromInt(-3)},
	})
	got := MustString(node, EncodeWire(true))
	if got != `{"a":["x"],"b":-3}` {
		t.Errorf("got %s", got)
	}
}

func TestEncodeStrings(t *testing.T) {
	tests := []struct {
		in, want string
		html     bool
	}{
		{"plain", `"plain"`, false},
		{"q\"b\\", `"q\"b\\"`, false},
		{"a\nb\tc", `"a\nb\tc"`, false},
		{"\x01", `"\u0001"`, false},
		{"<b>&", `"<b>&"`, false},
		{"<b>&", `"\u003cb\u003e\u0026"`, true},
		{"Hölderlin", `"Hölderlin"`, false},
		{"\u2028", `"\u2028"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := MustString(ir.FromString(tt.in), EncodeEscapeHTML(tt.html))
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeKeepsNumberLiterals(t *testing.T) {
	in := `{"w":1.50,"h":1e3,"n":-0}`
	node, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if got := MustString(node, EncodeWire(true)); got != in {
		t.Errorf("got %s, want %s", got, in)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := `{"@context":"http://iiif.io/api/presentation/2/context.json","@id":"m1","label":["a",{"@value":"b","@language":"de"}],"x-custom":{"deep":[null,true,{"k":"v"}]}}`
	node, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		t.Fatal(err)
	}
	back, err := parse.Parse(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, back) {
		t.Errorf("indented round trip differs:\n%s", buf.String())
	}
	if got := MustString(back, EncodeWire(true)); got != in {
		t.Errorf("got %s", got)
	}
}

func TestEncodeNonFinite(t *testing.T) {
	err := Encode(ir.FromFloat(math.Inf(1)), &bytes.Buffer{})
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("error = %v, want ErrUnsupportedValue", err)
	}
}

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()
	c := color.New(color.Underline)
	pal := Colors{RoleKeyword: c}
	n := ir.FromKeyVals([]ir.KeyVal{
		{Key: "@id", Val: ir.FromString("m")},
		{Key: "label", Val: ir.FromInt(1)},
	})
	got := MustString(n, EncodeColors(pal), EncodeWire(true))
	want := "{" + c.Sprint(`"@id"`) + `:"m","label":1}`
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if plain := MustString(n, EncodeColors(nil), EncodeWire(true)); plain != `{"@id":"m","label":1}` {
		t.Errorf("nil palette colored: %q", plain)
	}
}
