package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-iiif/ir"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{`null`, ir.Null()},
		{`true`, ir.FromBool(true)},
		{`"x"`, ir.FromString("x")},
		{`12`, ir.FromInt(12)},
		{`-0.5`, ir.FromFloat(-0.5)},
		{`1e3`, ir.FromFloat(1000)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(got, tt.want) {
				t.Errorf("Parse(%s) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseKeepsOrderAndLiterals(t *testing.T) {
	got, err := Parse([]byte(`{"z": 1, "@id": "m1", "a": [1.50, {"b": null}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"z", "@id", "a"}, got.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	num := ir.Get(got, "a").Values[0]
	if num.Number != "1.50" {
		t.Errorf("literal = %q, want 1.50", num.Number)
	}
	b := ir.Get(ir.Get(got, "a").Values[1], "b")
	if b.Path() != "$.a[1].b" {
		t.Errorf("path = %q", b.Path())
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	doc := []byte(`{"a": 1, "b": 2, "a": 3}`)
	got, err := Parse(doc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if v := ir.Get(got, "a"); *v.Int64 != 3 {
		t.Errorf("a = %d, want 3", *v.Int64)
	}
	_, err = Parse(doc, ParseStrictKeys(true))
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("strict keys error = %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{``, `{`, `{"a" 1}`, `[1,]`, `{} {}`, `{1: 2}`} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse([]byte(in))
			if !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q) error = %v, want ErrParse", in, err)
			}
		})
	}
}

func TestParseMaxDepth(t *testing.T) {
	in := strings.Repeat("[", 5) + strings.Repeat("]", 5)
	if _, err := Parse([]byte(in), ParseMaxDepth(5)); err != nil {
		t.Errorf("depth 5 within limit: %v", err)
	}
	_, err := Parse([]byte(in), ParseMaxDepth(4))
	if !errors.Is(err, ErrTooDeep) {
		t.Errorf("error = %v, want ErrTooDeep", err)
	}
}
