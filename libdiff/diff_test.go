package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-iiif/parse"
)

func TestDiff(t *testing.T) {
	for _, tc := range []struct {
		name     string
		from, to string
		want     []string
	}{
		{
			name: "same",
			from: `{"a":1,"b":[1,2]}`,
			to:   `{"a":1,"b":[1,2]}`,
		},
		{
			name: "field added and removed",
			from: `{"a":1,"b":2}`,
			to:   `{"a":1,"c":3}`,
			want: []string{`- $.b: 2`, `+ $.c: 3`},
		},
		{
			name: "number",
			from: `{"h":1000}`,
			to:   `{"h":1200}`,
			want: []string{`~ $.h: 1000 -> 1200`},
		},
		{
			name: "number literal",
			from: `{"x":2.50}`,
			to:   `{"x":2.5}`,
			want: []string{`# $.x: 2.50 -> 2.5`},
		},
		{
			name: "type change",
			from: `{"label":"a"}`,
			to:   `{"label":["a","b"]}`,
			want: []string{`~ $.label: "a" -> ["a","b"]`},
		},
		{
			name: "string detail",
			from: `{"label":"Sheet 1"}`,
			to:   `{"label":"Sheet 2"}`,
			want: []string{`~ $.label: Sheet [-1-]{+2+}`},
		},
		{
			name: "reorder",
			from: `{"a":1,"b":2}`,
			to:   `{"b":2,"a":1}`,
			want: []string{`^ $`},
		},
		{
			name: "array element removed",
			from: `["x","y","z"]`,
			to:   `["x","z"]`,
			want: []string{`- $[1]: "y"`},
		},
		{
			name: "array element inserted",
			from: `[1,3]`,
			to:   `[1,2,3]`,
			want: []string{`+ $[1]: 2`},
		},
		{
			name: "canvases aligned by id",
			from: `[{"@id":"c1","width":1},{"@id":"c2","width":2}]`,
			to:   `[{"@id":"c0"},{"@id":"c1","width":1},{"@id":"c2","width":3}]`,
			want: []string{`+ $[0]: {"@id":"c0"}`, `~ $[2].width: 2 -> 3`},
		},
		{
			name: "replaced element compared",
			from: `[{"@id":"a","n":1}]`,
			to:   `[{"@id":"b","n":1}]`,
			want: []string{`~ $[0].@id: "a" -> "b"`},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			from, err := parse.Parse([]byte(tc.from))
			if err != nil {
				t.Fatal(err)
			}
			to, err := parse.Parse([]byte(tc.to))
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, c := range Diff(from, to) {
				got = append(got, c.String())
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestLosses(t *testing.T) {
	from, _ := parse.Parse([]byte(`{"a":2.50,"b":1,"c":true}`))
	to, _ := parse.Parse([]byte(`{"b":1,"a":2.5}`))
	cs := Diff(from, to)
	if len(cs) != 3 {
		t.Fatalf("changes %v", cs)
	}
	ls := Losses(cs)
	if len(ls) != 1 || ls[0].Kind != Delete || ls[0].Path != "$.c" {
		t.Errorf("losses %v", ls)
	}
}

func TestReverse(t *testing.T) {
	from, _ := parse.Parse([]byte(`{"a":"Sheet 1","b":1}`))
	to, _ := parse.Parse([]byte(`{"a":"Sheet 2","c":2}`))
	var got []string
	for _, c := range Reverse(Diff(from, to)) {
		got = append(got, c.String())
	}
	want := []string{`~ $.a: Sheet {+1+}[-2-]`, `+ $.b: 1`, `- $.c: 2`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
