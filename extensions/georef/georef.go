// Package georef implements the georeference extension, which relates the
// pixels of a map image to geographic coordinates through ground control
// points and a transformation.
package georef

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/extensions"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

// Name is the property the extension lives under.
const Name = "georeference"

const (
	TypeGeoreference = "Georeference"
	CRSWGS84         = "EPSG:4326"

	Polynomial = "polynomial"
	Helmert    = "helmert"
	ThinPlate  = "thinPlateSpline"
)

var (
	typeKey           = track.NewKey[string]("type")
	crsKey            = track.NewKey[string]("crs")
	gcpsKey           = track.NewKey[[]GCP]("gcps")
	transformationKey = track.NewKey[*Transformation]("transformation")
	optionsKey        = track.NewKey[*ir.Node]("options")
)

func Set(t track.Trackable, g *Georeference) {
	extensions.Set(t, Name, g)
}

func Get(t track.Trackable) (*Georeference, bool, error) {
	return extensions.Get(t, Name, Georeferences)
}

func Clear(t track.Trackable) {
	t.Props().Clear(Name)
}

// GCP is a ground control point: an image position in pixels and the
// world position it maps to.
type GCP struct {
	Image [2]float64
	World [2]float64
}

// Georeference describes how a canvas maps onto the world.
type Georeference struct {
	props *track.Store
}

func New(crs string, t *Transformation, gcps ...GCP) *Georeference {
	g := &Georeference{props: track.NewStore()}
	track.Set(g.props, typeKey, TypeGeoreference)
	track.Set(g.props, crsKey, crs)
	track.Set(g.props, gcpsKey, gcps)
	track.Set(g.props, transformationKey, t)
	return g
}

func (g *Georeference) Props() *track.Store {
	return g.props
}

func (g *Georeference) Type() string {
	return track.Value(g.props, typeKey)
}

func (g *Georeference) CRS() string {
	return track.Value(g.props, crsKey)
}

func (g *Georeference) SetCRS(crs string) {
	track.Set(g.props, crsKey, crs)
}

func (g *Georeference) GCPs() []GCP {
	return track.Value(g.props, gcpsKey)
}

func (g *Georeference) AddGCP(ps ...GCP) {
	track.Append(g.props, gcpsKey, ps...)
}

func (g *Georeference) Transformation() *Transformation {
	return track.Value(g.props, transformationKey)
}

func (g *Georeference) SetTransformation(t *Transformation) {
	track.Set(g.props, transformationKey, t)
}

func (g *Georeference) ToIR() *ir.Node {
	return convert.Encode(Georeferences, g)
}

type georeferenceConverter struct{}

var Georeferences convert.Converter[*Georeference] = georeferenceConverter{}

func (georeferenceConverter) Resource() string { return "Georeference" }

func (georeferenceConverter) Create(n *ir.Node) (*Georeference, error) {
	if n.Type != ir.ObjectType {
		return nil, convert.Shape("Georeference", n, "", ir.ObjectType)
	}
	t, err := convert.RequiredString("Georeference", n, typeKey.Name())
	if err != nil {
		return nil, err
	}
	g := &Georeference{props: track.NewStore()}
	track.Set(g.props, typeKey, t)
	return g, nil
}

func (georeferenceConverter) Enrich(g *Georeference, n *ir.Node) error {
	if crs, ok := convert.String(ir.Get(n, crsKey.Name())); ok {
		track.Set(g.props, crsKey, crs)
	}
	pns, err := convert.ArrayField("Georeference", n, gcpsKey.Name())
	if err != nil {
		return err
	}
	var gcps []GCP
	for _, pn := range pns {
		p, err := decodeGCP(pn)
		if err != nil {
			return err
		}
		gcps = append(gcps, p)
	}
	track.Set(g.props, gcpsKey, gcps)
	tn, err := convert.ObjectField("Georeference", n, transformationKey.Name())
	if err != nil {
		return err
	}
	if tn != nil {
		t, err := convert.Decode(Transformations, tn)
		if err != nil {
			return err
		}
		track.Set(g.props, transformationKey, t)
	}
	return nil
}

func (georeferenceConverter) Emit(g *Georeference, o *convert.Object) {
	o.String("type", g.Type())
	o.String("crs", g.CRS())
	var ps []*ir.Node
	for _, p := range g.GCPs() {
		ps = append(ps, ir.FromKeyVals([]ir.KeyVal{
			{Key: "image", Val: pair(p.Image)},
			{Key: "world", Val: pair(p.World)},
		}))
	}
	o.Set("gcps", convert.Always(ps))
	o.Set("transformation", convert.Encode(Transformations, g.Transformation()))
}

func decodeGCP(n *ir.Node) (GCP, error) {
	var p GCP
	if n.Type != ir.ObjectType {
		return p, convert.Shape("GCP", n, "", ir.ObjectType)
	}
	for _, f := range []struct {
		name string
		dst  *[2]float64
	}{{"image", &p.Image}, {"world", &p.World}} {
		v, err := convert.Required("GCP", n, f.name)
		if err != nil {
			return p, err
		}
		if v.Type != ir.ArrayType || len(v.Values) != 2 {
			return p, convert.Shape("GCP", n, f.name, ir.ArrayType)
		}
		for i, c := range v.Values {
			x, ok := convert.Float(c)
			if !ok {
				return p, convert.Shape("GCP", c, "", ir.NumberType)
			}
			f.dst[i] = x
		}
	}
	return p, nil
}

func pair(v [2]float64) *ir.Node {
	return ir.FromSlice([]*ir.Node{ir.FromFloat(v[0]), ir.FromFloat(v[1])})
}

// Transformation names the fitting method. Its options are kept as a node
// since they depend on the method.
type Transformation struct {
	props *track.Store
}

func NewTransformation(typ string, options *ir.Node) *Transformation {
	t := &Transformation{props: track.NewStore()}
	track.Set(t.props, typeKey, typ)
	track.Set(t.props, optionsKey, options)
	return t
}

// NewPolynomial returns a polynomial transformation of the given order.
func NewPolynomial(order int) *Transformation {
	return NewTransformation(Polynomial, ir.FromKeyVals([]ir.KeyVal{
		{Key: "order", Val: ir.FromInt(int64(order))},
	}))
}

func (t *Transformation) Props() *track.Store {
	return t.props
}

func (t *Transformation) Type() string {
	return track.Value(t.props, typeKey)
}

func (t *Transformation) Options() *ir.Node {
	return track.Value(t.props, optionsKey)
}

// Order returns the polynomial order option.
func (t *Transformation) Order() (int, bool) {
	return convert.Int(ir.Get(t.Options(), "order"))
}

type transformationConverter struct{}

var Transformations convert.Converter[*Transformation] = transformationConverter{}

func (transformationConverter) Resource() string { return "Transformation" }

func (transformationConverter) Create(n *ir.Node) (*Transformation, error) {
	t, err := convert.RequiredString("Transformation", n, typeKey.Name())
	if err != nil {
		return nil, err
	}
	return NewTransformation(t, nil), nil
}

func (transformationConverter) Enrich(t *Transformation, n *ir.Node) error {
	if o := ir.Get(n, optionsKey.Name()); o != nil {
		track.Set(t.props, optionsKey, o.Clone())
	}
	return nil
}

func (transformationConverter) Emit(t *Transformation, o *convert.Object) {
	o.String("type", t.Type())
	if opts := t.Options(); opts != nil {
		o.Set("options", opts.Clone())
	}
}
