package iiif

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/encode"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestServiceKinds(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind string
	}{
		{"image by context", `{"@context":"http://iiif.io/api/image/2/context.json","@id":"i"}`, "image"},
		{"image by profile", `{"@id":"i","profile":"http://iiif.io/api/image/2/level2.json"}`, "image"},
		{"image by profile array", `{"@id":"i","profile":["http://iiif.io/api/image/2/level1.json",{"formats":["png"]}]}`, "image"},
		{"image by type", `{"@id":"i","@type":"ImageService2"}`, "image"},
		{"auth login", `{"@id":"a","profile":"http://iiif.io/api/auth/1/login"}`, "auth"},
		{"auth by type", `{"@id":"a","@type":"AuthProbeService2"}`, "auth"},
		{"search", `{"@context":"http://iiif.io/api/search/0/context.json","@id":"s","profile":"http://iiif.io/api/search/0/search"}`, "search"},
		{"type wins over profile", `{"@id":"s","@type":"SearchService1","profile":"http://iiif.io/api/image/2/level1.json"}`, "search"},
		{"discovery", `{"@context":"http://iiif.io/api/discovery/1/context.json","@id":"d","@type":"OrderedCollection","orderedItems":[{"type":"Update","object":{"id":"m","type":"Manifest"}}]}`, "discovery"},
		{"discovery by profile", `{"@id":"d","profile":"http://example.org/discovery/changes"}`, "discovery"},
		{"content state", `{"@context":"http://iiif.io/api/content-state/1/context.json","@id":"c","@type":"ContentStateService","profile":"http://iiif.io/api/content-state/1/"}`, "content-state"},
		{"unknown", `{"@id":"g","profile":"http://example.org/geojson"}`, "generic"},
		{"bare uri", `"http://example.org/service"`, "generic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := mustParse(t, tt.in)
			if got := KindOf(n); got != tt.kind {
				t.Errorf("KindOf = %s, want %s", got, tt.kind)
			}
			s, err := DecodeService(n)
			if err != nil {
				t.Fatal(err)
			}
			var got string
			switch s.(type) {
			case *ImageService:
				got = "image"
			case *AuthService:
				got = "auth"
			case *SearchService:
				got = "search"
			case *DiscoveryService:
				got = "discovery"
			case *ContentStateService:
				got = "content-state"
			case *GenericService:
				got = "generic"
			}
			if got != tt.kind {
				t.Errorf("decoded as %T", s)
			}
			if !ir.Equivalent(n, s.ToIR()) {
				t.Errorf("round trip %s", encode.MustString(s.ToIR(), encode.EncodeWire(true)))
			}
		})
	}
}

func TestServiceCollapse(t *testing.T) {
	c := NewCanvas("c", "p", 10, 20)
	c.AddService(NewGenericService("http://example.org/ctx", "s1", "http://example.org/p"))
	got := encode.MustString(ir.Get(c.ToIR(), "service"), encode.EncodeWire(true))
	if got != `{"@context":"http://example.org/ctx","@id":"s1","profile":"http://example.org/p"}` {
		t.Errorf("one service: %s", got)
	}
	c.AddService(NewImageService("i1", ImageLevel1))
	svc := ir.Get(c.ToIR(), "service")
	if svc.Type != ir.ArrayType || len(svc.Values) != 2 {
		t.Errorf("two services: %s", encode.MustString(svc, encode.EncodeWire(true)))
	}
	// service follows the identity fields
	if diff := cmp.Diff([]string{"@id", "@type", "service", "label", "height", "width"}, c.ToIR().Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestServiceShared(t *testing.T) {
	is := NewImageService("https://example.org/img", ImageLevel2)
	is.SetWidth(6000)
	is.SetHeight(8000)
	is.AddTile(NewTile(256, 1, 2, 4, 8))
	is.AddSize(NewSize(150, 200))
	r1 := NewImageResource("r1", "image/jpeg")
	r2 := NewImageResource("r2", "image/jpeg")
	r1.AddService(is)
	r2.AddService(is)
	is.SetMaxWidth(2000)
	for _, r := range []*MediaResource{r1, r2} {
		if w := ir.Get(ir.Get(r.ToIR(), "service"), "maxWidth"); w == nil || *w.Int64 != 2000 {
			t.Errorf("%s: service change not visible", r.ID())
		}
	}
	want := `{"@context":"http://iiif.io/api/image/2/context.json","@id":"https://example.org/img","profile":"http://iiif.io/api/image/2/level2.json","height":8000,"width":6000,"tiles":[{"width":256,"scaleFactors":[1,2,4,8]}],"sizes":[{"width":150,"height":200}],"maxWidth":2000}`
	if got := encode.MustString(is.ToIR(), encode.EncodeWire(true)); got != want {
		t.Errorf("got %s", got)
	}
}

func TestTileScaleFactors(t *testing.T) {
	_, err := DecodeService(mustParse(t, `{"@id":"i","profile":"http://iiif.io/api/image/2/level1.json","tiles":[{"width":512,"scaleFactors":[1,"2"]}]}`))
	if !errors.Is(err, convert.ErrShape) {
		t.Errorf("error = %v, want ErrShape", err)
	}
	_, err = DecodeService(mustParse(t, `{"@id":"i","profile":"http://iiif.io/api/image/2/level1.json","tiles":[{"height":512}]}`))
	if !errors.Is(err, convert.ErrRequiredField) {
		t.Errorf("error = %v, want ErrRequiredField", err)
	}
}

func TestAuthService(t *testing.T) {
	in := `{"@context":"http://iiif.io/api/auth/1/context.json","@id":"https://example.org/login","profile":"http://iiif.io/api/auth/1/login","label":"Login to Example","header":"Please Log In","description":"Example requires that you log in","confirmLabel":"Login","failureHeader":"Authentication Failed","failureDescription":"<a href=\"http://example.org/policy\">Access Policy</a>","service":{"@id":"https://example.org/token","profile":"http://iiif.io/api/auth/1/token"}}`
	s, err := DecodeService(mustParse(t, in))
	if err != nil {
		t.Fatal(err)
	}
	as, ok := s.(*AuthService)
	if !ok {
		t.Fatalf("decoded %T", s)
	}
	if as.Label() != "Login to Example" || as.ConfirmLabel() != "Login" || as.FailureHeader() != "Authentication Failed" {
		t.Errorf("auth %q %q %q", as.Label(), as.ConfirmLabel(), as.FailureHeader())
	}
	if sub := as.Services(); len(sub) != 1 || sub[0].Profile() != "http://iiif.io/api/auth/1/token" {
		t.Errorf("nested services %v", sub)
	}
	if got := encode.MustString(as.ToIR(), encode.EncodeWire(true)); got != in {
		t.Errorf("got %s", got)
	}
}

func TestSearchAutoComplete(t *testing.T) {
	in := `{"@context":"http://iiif.io/api/search/0/context.json","@id":"https://example.org/search","profile":"http://iiif.io/api/search/0/search","service":{"@id":"https://example.org/autocomplete","profile":"http://iiif.io/api/search/0/autocomplete"}}`
	s, err := DecodeService(mustParse(t, in))
	if err != nil {
		t.Fatal(err)
	}
	ac := s.(*SearchService).AutoComplete()
	if ac == nil || ac.ID() != "https://example.org/autocomplete" {
		t.Errorf("autocomplete %v", ac)
	}
	if got := encode.MustString(s.ToIR(), encode.EncodeWire(true)); got != in {
		t.Errorf("got %s", got)
	}
}

func TestDiscoveryActivities(t *testing.T) {
	in := `{"@context":"http://iiif.io/api/discovery/1/context.json","@id":"https://example.org/activity/all-changes","@type":"OrderedCollection","orderedItems":[{"type":"Create","object":{"id":"https://example.org/m1","type":"Manifest"},"endTime":"2017-09-20T00:00:00Z"},{"type":"Update","object":{"id":"https://example.org/m2","type":"Manifest"},"endTime":"2017-09-21T10:30:00.5Z","actor":"x"}]}`
	s, err := DecodeService(mustParse(t, in))
	if err != nil {
		t.Fatal(err)
	}
	ds, ok := s.(*DiscoveryService)
	if !ok {
		t.Fatalf("decoded %T", s)
	}
	if got := encode.MustString(ds.ToIR(), encode.EncodeWire(true)); got != in {
		t.Errorf("round trip %s", got)
	}
	if n := len(ds.Props().Changes()); n != 0 {
		t.Fatalf("decoded with %d changes", n)
	}

	as := ds.Activities()
	if len(as) != 2 {
		t.Fatalf("%d activities", len(as))
	}
	end, ok := as[1].EndTime()
	if !ok || end.Nanosecond() != 500000000 {
		t.Errorf("endTime %v %v", end, ok)
	}
	if got := ds.ActivitiesOf("https://example.org/m2"); len(got) != 1 || got[0] != as[1] {
		t.Errorf("ActivitiesOf %v", got)
	}

	del := NewActivity(ActivityDelete, NewActivityObject("https://example.org/m1", "Manifest"), time.Date(2017, 9, 22, 0, 0, 0, 0, time.UTC))
	ds.AddActivity(del)
	ds.RemoveActivity(as[0])
	if !ds.Props().IsModified("orderedItems") {
		t.Error("orderedItems not modified")
	}
	var got []string
	for _, a := range ds.Activities() {
		got = append(got, a.Type()+" "+a.Object().ID())
	}
	want := []string{"Update https://example.org/m2", "Delete https://example.org/m1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("activities (-want +got):\n%s", diff)
	}
	wantLast := `{"type":"Delete","object":{"id":"https://example.org/m1","type":"Manifest"},"endTime":"2017-09-22T00:00:00Z"}`
	if got := encode.MustString(del.ToIR(), encode.EncodeWire(true)); got != wantLast {
		t.Errorf("got %s", got)
	}
}

func TestDiscoveryErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"activity without type", `{"@id":"d","@type":"OrderedCollection","orderedItems":[{"object":{"id":"m"}}]}`},
		{"object without id", `{"@id":"d","@type":"OrderedCollection","orderedItems":[{"type":"Update","object":{"type":"Manifest"}}]}`},
		{"items not array", `{"@id":"d","@type":"OrderedCollection","orderedItems":{"type":"Update"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeService(mustParse(t, tt.in))
			if !errors.Is(err, convert.ErrRequiredField) && !errors.Is(err, convert.ErrShape) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestContentStateService(t *testing.T) {
	cs := NewContentStateService(ContentStateContext1, "https://example.org/state", "http://iiif.io/api/content-state/1/")
	want := `{"@context":"http://iiif.io/api/content-state/1/context.json","@id":"https://example.org/state","@type":"ContentStateService","profile":"http://iiif.io/api/content-state/1/"}`
	if got := encode.MustString(cs.ToIR(), encode.EncodeWire(true)); got != want {
		t.Errorf("got %s", got)
	}
	s, err := DecodeService(cs.ToIR())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*ContentStateService); !ok {
		t.Errorf("decoded %T", s)
	}
}

type geoService struct {
	GenericService
}

func TestRegisterService(t *testing.T) {
	n := mustParse(t, `{"@id":"g","profile":"http://example.org/geo/navigation","x":1}`)
	RegisterService(ServiceKind{
		Name:     "geo",
		Profiles: []string{"example.org/geo/"},
		Decode: func(n *ir.Node) (Service, error) {
			g, err := convert.Decode(GenericServices, n)
			if err != nil {
				return nil, err
			}
			return &geoService{GenericService: *g}, nil
		},
	})
	if got := KindOf(n); got != "geo" {
		t.Errorf("KindOf = %s", got)
	}
	s, err := DecodeService(n)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*geoService); !ok {
		t.Errorf("decoded %T", s)
	}
	if !ir.Equivalent(n, s.ToIR()) {
		t.Errorf("round trip %s", encode.MustString(s.ToIR(), encode.EncodeWire(true)))
	}
}
