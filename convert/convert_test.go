package convert

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-iiif/encode"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/parse"
	"github.com/signadot/go-iiif/track"
)

var (
	idKey    = track.NewKey[string]("@id")
	widthKey = track.NewKey[int]("width")
	tagsKey  = track.NewKey[[]string]("tags")
	partsKey = track.NewKey[[]*box]("parts")
	whenKey  = track.NewKey[time.Time]("when")
)

type box struct{ props *track.Store }

func (b *box) Props() *track.Store { return b.props }

type boxConverter struct{}

func (boxConverter) Resource() string { return "Box" }

func (boxConverter) Create(n *ir.Node) (*box, error) {
	id, err := RequiredString("Box", n, "@id")
	if err != nil {
		return nil, err
	}
	b := &box{props: track.NewStore()}
	track.Set(b.props, idKey, id)
	return b, nil
}

func (c boxConverter) Enrich(b *box, n *ir.Node) error {
	if w, ok := Int(ir.Get(n, "width")); ok {
		track.Set(b.props, widthKey, w)
	}
	var tags []string
	for _, t := range OneOrMany(ir.Get(n, "tags")) {
		if s, ok := String(t); ok {
			tags = append(tags, s)
		}
	}
	track.Set(b.props, tagsKey, tags)
	parts, err := ArrayField("Box", n, "parts")
	if err != nil {
		return err
	}
	ps, err := DecodeAll[*box](c, parts)
	if err != nil {
		return err
	}
	track.Set(b.props, partsKey, ps)
	if t, ok := Time(ir.Get(n, "when")); ok {
		track.Set(b.props, whenKey, t)
	}
	return nil
}

func (c boxConverter) Emit(b *box, o *Object) {
	o.String("@id", track.Value(b.props, idKey))
	w, ok := track.Get(b.props, widthKey)
	o.Int("width", w, ok)
	o.Set("tags", Collapse(Strings(track.Value(b.props, tagsKey))))
	o.Set("parts", Always(EncodeAll[*box](c, track.Value(b.props, partsKey))))
	o.Set("when", FromTime(track.Value(b.props, whenKey)))
}

func decodeBox(t *testing.T, in string) *box {
	t.Helper()
	b, err := DecodeBytes[*box](boxConverter{}, []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestRoundTripKeepsUnknownFields(t *testing.T) {
	in := `{"@id":"b1","x-first":{"k":[1,2,{"z":null}]},"width":10,"tags":"one","parts":[{"@id":"p1","x-nested":true}],"x-last":"v"}`
	b := decodeBox(t, in)
	if b.props.IsModified("width") {
		t.Errorf("freshly decoded value reports modified")
	}
	if !b.props.IsAdditional("x-first") {
		t.Errorf("unknown field not additional")
	}
	got := Encode[*box](boxConverter{}, b)
	want, _ := parse.Parse([]byte(`{"@id":"b1","width":10,"tags":"one","parts":[{"@id":"p1","x-nested":true}],"x-first":{"k":[1,2,{"z":null}]},"x-last":"v"}`))
	if !ir.Equal(got, want) {
		t.Errorf("got %s", encode.MustString(got, encode.EncodeWire(true)))
	}
}

func TestCollapse(t *testing.T) {
	single := decodeBox(t, `{"@id":"b","tags":"a"}`)
	array := decodeBox(t, `{"@id":"b","tags":["a"]}`)
	if !single.props.Equal(array.props) {
		t.Errorf("single and one-element array decode differently")
	}
	tags := ir.Get(Encode[*box](boxConverter{}, array), "tags")
	if tags.Type != ir.StringType {
		t.Errorf("one-element collection encoded as %s", tags.Type)
	}
	many := Encode[*box](boxConverter{}, decodeBox(t, `{"@id":"b","tags":["a","b"]}`))
	if ir.Get(many, "tags").Type != ir.ArrayType {
		t.Errorf("two-element collection not an array")
	}
	none := Encode[*box](boxConverter{}, decodeBox(t, `{"@id":"b","tags":[]}`))
	// the empty array was never declared, so it survives as passthrough
	if v := ir.Get(none, "tags"); v == nil || v.Type != ir.ArrayType || len(v.Values) != 0 {
		t.Errorf("empty tags = %v", v)
	}
}

func TestAlwaysArray(t *testing.T) {
	b := decodeBox(t, `{"@id":"b","parts":[{"@id":"p"}]}`)
	parts := ir.Get(Encode[*box](boxConverter{}, b), "parts")
	if parts == nil || parts.Type != ir.ArrayType || len(parts.Values) != 1 {
		t.Errorf("parts = %v", parts)
	}
}

func TestRequiredField(t *testing.T) {
	_, err := DecodeBytes[*box](boxConverter{}, []byte(`{"parts":[{"@id":"p"}]}`))
	if !errors.Is(err, ErrRequiredField) {
		t.Fatalf("error = %v", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) || de.Field != "@id" || de.Resource != "Box" || de.Path != "$.@id" {
		t.Errorf("decode error = %+v", de)
	}

	b, err := DecodeBytes[*box](boxConverter{}, []byte(`{"@id":"b","parts":[{"width":1}]}`))
	if b != nil {
		t.Errorf("partial value returned")
	}
	if !errors.As(err, &de) || de.Path != "$.parts[0].@id" {
		t.Errorf("nested error = %v", err)
	}
}

func TestShapeError(t *testing.T) {
	_, err := DecodeBytes[*box](boxConverter{}, []byte(`{"@id":"b","parts":{"@id":"p"}}`))
	if !errors.Is(err, ErrShape) {
		t.Fatalf("error = %v", err)
	}
	_, err = DecodeBytes[*box](boxConverter{}, []byte(`{"@id":7}`))
	if !errors.Is(err, ErrShape) {
		t.Errorf("numeric id error = %v", err)
	}
}

func TestTimeCoercion(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  time.Time
		typed bool
	}{
		{"utc", "1856-01-01T00:00:00Z", time.Date(1856, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"fraction", "1856-01-01T00:00:00.5Z", time.Date(1856, 1, 1, 0, 0, 0, 5e8, time.UTC), true},
		{"offset", "1856-01-01T10:30:00+01:00", time.Date(1856, 1, 1, 9, 30, 0, 0, time.UTC), true},
		{"zero offset", "1856-01-01T00:00:00+00:00", time.Time{}, false},
		{"trailing zero fraction", "1856-01-01T00:00:00.50Z", time.Time{}, false},
		{"not a date", "last spring", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := `{"@id":"b","when":"` + tt.in + `"}`
			b := decodeBox(t, in)
			got, ok := track.Get(b.props, whenKey)
			if ok != tt.typed || (ok && !got.Equal(tt.want)) {
				t.Errorf("when = %v %t", got, ok)
			}
			if !tt.typed && !b.props.IsAdditional("when") {
				t.Errorf("not kept as passthrough")
			}
			if out := encode.MustString(Encode[*box](boxConverter{}, b), encode.EncodeWire(true)); out != in {
				t.Errorf("re-encoded as %s", out)
			}
		})
	}
}

type ext struct {
	Name string `json:"name"`
}

func TestEmitRaw(t *testing.T) {
	b := decodeBox(t, `{"@id":"b"}`)
	b.props.SetAdditional("x-ext", ext{Name: "n"})
	b.props.SetAdditional("x-node", ir.FromSlice([]*ir.Node{ir.FromInt(1)}))
	got := encode.MustString(Encode[*box](boxConverter{}, b), encode.EncodeWire(true))
	if diff := cmp.Diff(`{"@id":"b","x-ext":{"name":"n"},"x-node":[1]}`, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestOneOrMany(t *testing.T) {
	if got := OneOrMany(nil); got != nil {
		t.Errorf("nil -> %v", got)
	}
	if got := OneOrMany(ir.Null()); got != nil {
		t.Errorf("null -> %v", got)
	}
	if got := OneOrMany(ir.FromString("a")); len(got) != 1 {
		t.Errorf("scalar -> %d", len(got))
	}
	if got := OneOrMany(ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})); len(got) != 2 {
		t.Errorf("array -> %d", len(got))
	}
}

func TestIntCoercion(t *testing.T) {
	tests := []struct {
		in   *ir.Node
		want int
		ok   bool
	}{
		{ir.FromInt(3), 3, true},
		{ir.FromNumber("100.0"), 100, true},
		{ir.FromFloat(1.5), 0, false},
		{ir.FromString("3"), 0, false},
	}
	for _, tt := range tests {
		got, ok := Int(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Int(%s) = %d, %t", encode.MustString(tt.in), got, ok)
		}
	}
}
