package navplace

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

const (
	Point              = "Point"
	MultiPoint         = "MultiPoint"
	LineString         = "LineString"
	MultiLineString    = "MultiLineString"
	Polygon            = "Polygon"
	MultiPolygon       = "MultiPolygon"
	GeometryCollection = "GeometryCollection"
)

var (
	coordinatesKey = track.NewKey[*ir.Node]("coordinates")
	geometriesKey  = track.NewKey[[]*Geometry]("geometries")
)

// Geometry is a GeoJSON geometry. Coordinates are kept as a node since
// their nesting depends on the geometry type.
type Geometry struct {
	props *track.Store
}

// NewGeometry returns a geometry of type typ with the given coordinates.
func NewGeometry(typ string, coordinates *ir.Node) *Geometry {
	g := &Geometry{props: track.NewStore()}
	track.Set(g.props, typeKey, typ)
	track.Set(g.props, coordinatesKey, coordinates)
	return g
}

func NewPoint(lon, lat float64) *Geometry {
	return NewGeometry(Point, position(lon, lat))
}

// NewPolygon returns a polygon with a single outer ring. The ring is
// closed if its last position differs from the first.
func NewPolygon(ring ...[2]float64) *Geometry {
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	ps := make([]*ir.Node, 0, len(ring))
	for _, p := range ring {
		ps = append(ps, position(p[0], p[1]))
	}
	return NewGeometry(Polygon, ir.FromSlice([]*ir.Node{ir.FromSlice(ps)}))
}

func NewCollection(gs ...*Geometry) *Geometry {
	g := &Geometry{props: track.NewStore()}
	track.Set(g.props, typeKey, GeometryCollection)
	track.Set(g.props, geometriesKey, gs)
	return g
}

func position(lon, lat float64) *ir.Node {
	return ir.FromSlice([]*ir.Node{ir.FromFloat(lon), ir.FromFloat(lat)})
}

func (g *Geometry) Props() *track.Store {
	return g.props
}

func (g *Geometry) Type() string {
	return track.Value(g.props, typeKey)
}

func (g *Geometry) Coordinates() *ir.Node {
	return track.Value(g.props, coordinatesKey)
}

func (g *Geometry) Geometries() []*Geometry {
	return track.Value(g.props, geometriesKey)
}

// Point returns the position of a Point geometry.
func (g *Geometry) Point() (lon, lat float64, ok bool) {
	if g == nil || g.Type() != Point {
		return 0, 0, false
	}
	c := g.Coordinates()
	if c == nil || c.Type != ir.ArrayType || len(c.Values) < 2 {
		return 0, 0, false
	}
	lon, okLon := convert.Float(c.Values[0])
	lat, okLat := convert.Float(c.Values[1])
	return lon, lat, okLon && okLat
}

type geometryConverter struct{}

var Geometries convert.Converter[*Geometry] = geometryConverter{}

func (geometryConverter) Resource() string { return "Geometry" }

func (geometryConverter) Create(n *ir.Node) (*Geometry, error) {
	if n.Type != ir.ObjectType {
		return nil, convert.Shape("Geometry", n, "", ir.ObjectType)
	}
	t, err := convert.RequiredString("Geometry", n, typeKey.Name())
	if err != nil {
		return nil, err
	}
	g := &Geometry{props: track.NewStore()}
	track.Set(g.props, typeKey, t)
	return g, nil
}

func (geometryConverter) Enrich(g *Geometry, n *ir.Node) error {
	cs, err := convert.ArrayField("Geometry", n, coordinatesKey.Name())
	if err != nil {
		return err
	}
	if cs != nil {
		track.Set(g.props, coordinatesKey, ir.Get(n, coordinatesKey.Name()).Clone())
	}
	gns, err := convert.ArrayField("Geometry", n, geometriesKey.Name())
	if err != nil {
		return err
	}
	gs, err := convert.DecodeAll(Geometries, gns)
	if err != nil {
		return err
	}
	track.Set(g.props, geometriesKey, gs)
	return nil
}

func (geometryConverter) Emit(g *Geometry, o *convert.Object) {
	o.String("type", g.Type())
	if c := g.Coordinates(); c != nil {
		o.Set("coordinates", c.Clone())
	}
	if g.Type() == GeometryCollection {
		o.Set("geometries", ir.FromSlice(convert.EncodeAll(Geometries, g.Geometries())))
	}
}
