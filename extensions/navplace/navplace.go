// Package navplace implements the navPlace extension: a GeoJSON
// FeatureCollection locating a resource on a map.
package navplace

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/extensions"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

// Name is the property the extension lives under.
const Name = "navPlace"

const (
	Context = "http://iiif.io/api/extension/navplace/context.json"

	TypeFeatureCollection = "FeatureCollection"
	TypeFeature           = "Feature"
)

var (
	idKey         = track.NewKey[string]("id")
	typeKey       = track.NewKey[string]("type")
	featuresKey   = track.NewKey[[]*Feature]("features")
	propertiesKey = track.NewKey[*Properties]("properties")
	geometryKey   = track.NewKey[*Geometry]("geometry")
	labelKey      = track.NewKey[string]("label")
)

// Set attaches np to t, replacing any place it had.
func Set(t track.Trackable, np *NavPlace) {
	extensions.Set(t, Name, np)
}

// Get returns the place attached to t.
func Get(t track.Trackable) (*NavPlace, bool, error) {
	return extensions.Get(t, Name, NavPlaces)
}

// Clear removes the place attached to t.
func Clear(t track.Trackable) {
	t.Props().Clear(Name)
}

// NavPlace is a FeatureCollection.
type NavPlace struct {
	props *track.Store
}

func New(id string, features ...*Feature) *NavPlace {
	np := &NavPlace{props: track.NewStore()}
	track.Set(np.props, idKey, id)
	track.Set(np.props, typeKey, TypeFeatureCollection)
	track.Set(np.props, featuresKey, features)
	return np
}

// FromPoint returns a collection of one labelled point feature.
func FromPoint(lon, lat float64, label string) *NavPlace {
	f := NewFeature("", NewPoint(lon, lat))
	f.SetLabel(label)
	return New("", f)
}

func (np *NavPlace) Props() *track.Store {
	return np.props
}

func (np *NavPlace) ID() string {
	return track.Value(np.props, idKey)
}

func (np *NavPlace) Features() []*Feature {
	return track.Value(np.props, featuresKey)
}

func (np *NavPlace) AddFeature(fs ...*Feature) {
	track.Append(np.props, featuresKey, fs...)
}

func (np *NavPlace) ToIR() *ir.Node {
	return convert.Encode(NavPlaces, np)
}

type navPlaceConverter struct{}

var NavPlaces convert.Converter[*NavPlace] = navPlaceConverter{}

func (navPlaceConverter) Resource() string { return "NavPlace" }

func (navPlaceConverter) Create(n *ir.Node) (*NavPlace, error) {
	if n.Type != ir.ObjectType {
		return nil, convert.Shape("NavPlace", n, "", ir.ObjectType)
	}
	if _, err := convert.Required("NavPlace", n, featuresKey.Name()); err != nil {
		return nil, err
	}
	return &NavPlace{props: track.NewStore()}, nil
}

func (navPlaceConverter) Enrich(np *NavPlace, n *ir.Node) error {
	enrichIdentity(np.props, n)
	fns, err := convert.ArrayField("NavPlace", n, featuresKey.Name())
	if err != nil {
		return err
	}
	fs, err := convert.DecodeAll(Features, fns)
	if err != nil {
		return err
	}
	track.Set(np.props, featuresKey, fs)
	return nil
}

func (navPlaceConverter) Emit(np *NavPlace, o *convert.Object) {
	emitIdentity(np.props, o)
	o.Set("features", ir.FromSlice(convert.EncodeAll(Features, np.Features())))
}

// Feature is a located thing with a geometry and properties.
type Feature struct {
	props *track.Store
}

func NewFeature(id string, g *Geometry) *Feature {
	f := &Feature{props: track.NewStore()}
	track.Set(f.props, idKey, id)
	track.Set(f.props, typeKey, TypeFeature)
	track.Set(f.props, geometryKey, g)
	return f
}

func (f *Feature) Props() *track.Store {
	return f.props
}

func (f *Feature) ID() string {
	return track.Value(f.props, idKey)
}

func (f *Feature) Geometry() *Geometry {
	return track.Value(f.props, geometryKey)
}

func (f *Feature) SetGeometry(g *Geometry) {
	track.Set(f.props, geometryKey, g)
}

func (f *Feature) Properties() *Properties {
	return track.Value(f.props, propertiesKey)
}

func (f *Feature) SetProperties(p *Properties) {
	track.Set(f.props, propertiesKey, p)
}

// Label returns the label of the feature's properties.
func (f *Feature) Label() string {
	return f.Properties().Label()
}

// SetLabel sets the label, creating the properties if needed.
func (f *Feature) SetLabel(l string) {
	p := f.Properties()
	if p == nil {
		p = &Properties{props: track.NewStore()}
		f.SetProperties(p)
	}
	p.SetLabel(l)
}

func (f *Feature) ToIR() *ir.Node {
	return convert.Encode(Features, f)
}

type featureConverter struct{}

var Features convert.Converter[*Feature] = featureConverter{}

func (featureConverter) Resource() string { return "Feature" }

func (featureConverter) Create(n *ir.Node) (*Feature, error) {
	if n.Type != ir.ObjectType {
		return nil, convert.Shape("Feature", n, "", ir.ObjectType)
	}
	return &Feature{props: track.NewStore()}, nil
}

func (featureConverter) Enrich(f *Feature, n *ir.Node) error {
	enrichIdentity(f.props, n)
	if pn := ir.Get(n, propertiesKey.Name()); pn != nil && pn.Type == ir.ObjectType {
		p, err := convert.Decode(PropertiesConverter, pn)
		if err != nil {
			return err
		}
		track.Set(f.props, propertiesKey, p)
	}
	if gn := ir.Get(n, geometryKey.Name()); gn != nil && gn.Type == ir.ObjectType {
		g, err := convert.Decode(Geometries, gn)
		if err != nil {
			return err
		}
		track.Set(f.props, geometryKey, g)
	}
	return nil
}

func (featureConverter) Emit(f *Feature, o *convert.Object) {
	emitIdentity(f.props, o)
	o.Set("properties", convert.Encode(PropertiesConverter, f.Properties()))
	o.Set("geometry", convert.Encode(Geometries, f.Geometry()))
}

// Properties holds the descriptive members of a feature.
type Properties struct {
	props *track.Store
}

func (p *Properties) Props() *track.Store {
	return p.props
}

// Label returns the label. A language map label, as written by
// Presentation 3 documents, yields its first string.
func (p *Properties) Label() string {
	if p == nil {
		return ""
	}
	if l, ok := track.Get(p.props, labelKey); ok {
		return l
	}
	raw, ok := p.props.Raw(labelKey.Name())
	if !ok {
		return ""
	}
	var res string
	if n, ok := raw.(*ir.Node); ok {
		_ = n.Visit(func(v *ir.Node, isPost bool) (bool, error) {
			if !isPost && res == "" && v.Type == ir.StringType {
				res = v.String
			}
			return res == "", nil
		})
	}
	return res
}

func (p *Properties) SetLabel(l string) {
	track.Set(p.props, labelKey, l)
}

type propertiesConverter struct{}

var PropertiesConverter convert.Converter[*Properties] = propertiesConverter{}

func (propertiesConverter) Resource() string { return "Properties" }

func (propertiesConverter) Create(n *ir.Node) (*Properties, error) {
	return &Properties{props: track.NewStore()}, nil
}

func (propertiesConverter) Enrich(p *Properties, n *ir.Node) error {
	if l, ok := convert.String(ir.Get(n, labelKey.Name())); ok {
		track.Set(p.props, labelKey, l)
	}
	return nil
}

func (propertiesConverter) Emit(p *Properties, o *convert.Object) {
	o.String("label", track.Value(p.props, labelKey))
}

func enrichIdentity(s *track.Store, n *ir.Node) {
	if id, ok := convert.String(ir.Get(n, idKey.Name())); ok {
		track.Set(s, idKey, id)
	}
	if t, ok := convert.String(ir.Get(n, typeKey.Name())); ok {
		track.Set(s, typeKey, t)
	}
}

func emitIdentity(s *track.Store, o *convert.Object) {
	o.String("id", track.Value(s, idKey))
	o.String("type", track.Value(s, typeKey))
}
