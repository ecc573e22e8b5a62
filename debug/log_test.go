package debug

import (
	"bytes"
	"testing"

	"github.com/signadot/go-iiif/ir"
)

func TestLogfRendersNodes(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	defer SetOutput(nil)

	n := ir.FromKeyVals([]ir.KeyVal{{Key: "@id", Val: ir.FromString("c1")}})
	Logf("node %s count %d\n", any(n), 3)
	if got, want := buf.String(), "node {\"@id\":\"c1\"} count 3\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEnable(t *testing.T) {
	prev := *d
	defer func() { *d = prev }()
	for _, tc := range []struct {
		areas []string
		want  debug
	}{
		{[]string{""}, debug{}},
		{[]string{"decode", " diff"}, debug{Decode: true, Diff: true}},
		{[]string{"all"}, debug{true, true, true, true}},
	} {
		Reset()
		if err := Enable(tc.areas...); err != nil {
			t.Fatalf("%q: %v", tc.areas, err)
		}
		if *d != tc.want {
			t.Errorf("%q: flags = %+v, want %+v", tc.areas, *d, tc.want)
		}
	}
	if err := Enable("verbose"); err == nil {
		t.Errorf("unknown area accepted")
	}
}
