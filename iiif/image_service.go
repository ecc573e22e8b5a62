package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

const (
	ImageContext2 = "http://iiif.io/api/image/2/context.json"
	ImageLevel0   = "http://iiif.io/api/image/2/level0.json"
	ImageLevel1   = "http://iiif.io/api/image/2/level1.json"
	ImageLevel2   = "http://iiif.io/api/image/2/level2.json"
)

var (
	tilesKey        = track.NewKey[[]*Tile]("tiles")
	sizesKey        = track.NewKey[[]*Size]("sizes")
	maxWidthKey     = track.NewKey[int]("maxWidth")
	maxHeightKey    = track.NewKey[int]("maxHeight")
	maxAreaKey      = track.NewKey[int]("maxArea")
	scaleFactorsKey = track.NewKey[[]int]("scaleFactors")
)

// ImageService describes an IIIF Image API endpoint.
type ImageService struct {
	serviceBase
	Dimensions
}

func NewImageService(id, profile string) *ImageService {
	s := track.NewStore()
	track.Set(s, idKey, id)
	is := &ImageService{serviceBase: serviceBase{Item: Item{props: s}}, Dimensions: Dimensions{props: s}}
	is.SetContext(ImageContext2)
	is.SetProfile(profile)
	return is
}

func (is *ImageService) Tiles() []*Tile {
	return track.Value(is.props, tilesKey)
}

func (is *ImageService) AddTile(ts ...*Tile) {
	track.Append(is.props, tilesKey, ts...)
}

func (is *ImageService) Sizes() []*Size {
	return track.Value(is.props, sizesKey)
}

func (is *ImageService) AddSize(ss ...*Size) {
	track.Append(is.props, sizesKey, ss...)
}

func (is *ImageService) MaxWidth() (int, bool) {
	return track.Get(is.props, maxWidthKey)
}

func (is *ImageService) SetMaxWidth(v int) {
	track.Set(is.props, maxWidthKey, v)
}

func (is *ImageService) MaxHeight() (int, bool) {
	return track.Get(is.props, maxHeightKey)
}

func (is *ImageService) SetMaxHeight(v int) {
	track.Set(is.props, maxHeightKey, v)
}

func (is *ImageService) MaxArea() (int, bool) {
	return track.Get(is.props, maxAreaKey)
}

func (is *ImageService) SetMaxArea(v int) {
	track.Set(is.props, maxAreaKey, v)
}

func (is *ImageService) ToIR() *ir.Node {
	return convert.Encode(ImageServices, is)
}

type imageServiceConverter struct{}

var ImageServices convert.Converter[*ImageService] = imageServiceConverter{}

func (imageServiceConverter) Resource() string { return "ImageService" }

func (imageServiceConverter) Create(n *ir.Node) (*ImageService, error) {
	s, err := createService("ImageService", n)
	if err != nil {
		return nil, err
	}
	return &ImageService{serviceBase: serviceBase{Item: Item{props: s}}, Dimensions: Dimensions{props: s}}, nil
}

func (imageServiceConverter) Enrich(is *ImageService, n *ir.Node) error {
	if err := enrichService("ImageService", is.props, n); err != nil {
		return err
	}
	enrichDimensions(is.props, n)
	tiles, err := convert.ArrayField("ImageService", n, tilesKey.Name())
	if err != nil {
		return err
	}
	ts, err := convert.DecodeAll(Tiles, tiles)
	if err != nil {
		return err
	}
	track.Set(is.props, tilesKey, ts)
	sizes, err := convert.ArrayField("ImageService", n, sizesKey.Name())
	if err != nil {
		return err
	}
	ss, err := convert.DecodeAll(Sizes, sizes)
	if err != nil {
		return err
	}
	track.Set(is.props, sizesKey, ss)
	for _, k := range []track.Key[int]{maxWidthKey, maxHeightKey, maxAreaKey} {
		if v, ok := convert.Int(ir.Get(n, k.Name())); ok {
			track.Set(is.props, k, v)
		}
	}
	return nil
}

func (imageServiceConverter) Emit(is *ImageService, o *convert.Object) {
	emitService(is.props, o)
	emitDimensions(is.props, o)
	o.Set("tiles", convert.Always(convert.EncodeAll(Tiles, is.Tiles())))
	o.Set("sizes", convert.Always(convert.EncodeAll(Sizes, is.Sizes())))
	for _, k := range []track.Key[int]{maxWidthKey, maxHeightKey, maxAreaKey} {
		v, ok := track.Get(is.props, k)
		o.Int(k.Name(), v, ok)
	}
	o.Set("service", emitServices(is.Services()))
}

// Tile describes a tiling of an image service.
type Tile struct {
	props *track.Store
}

func NewTile(width int, scaleFactors ...int) *Tile {
	t := &Tile{props: track.NewStore()}
	track.Set(t.props, widthKey, width)
	track.Set(t.props, scaleFactorsKey, scaleFactors)
	return t
}

func (t *Tile) Props() *track.Store {
	return t.props
}

func (t *Tile) Width() int {
	return track.Value(t.props, widthKey)
}

// Height returns the tile height, which defaults to the width.
func (t *Tile) Height() int {
	if h, ok := track.Get(t.props, heightKey); ok {
		return h
	}
	return t.Width()
}

func (t *Tile) SetHeight(h int) {
	track.Set(t.props, heightKey, h)
}

func (t *Tile) ScaleFactors() []int {
	return track.Value(t.props, scaleFactorsKey)
}

type tileConverter struct{}

var Tiles convert.Converter[*Tile] = tileConverter{}

func (tileConverter) Resource() string { return "Tile" }

func (tileConverter) Create(n *ir.Node) (*Tile, error) {
	if n.Type != ir.ObjectType {
		return nil, convert.Shape("Tile", n, "", ir.ObjectType)
	}
	w, err := convert.RequiredInt("Tile", n, widthKey.Name())
	if err != nil {
		return nil, err
	}
	return NewTile(w), nil
}

func (tileConverter) Enrich(t *Tile, n *ir.Node) error {
	if h, ok := convert.Int(ir.Get(n, heightKey.Name())); ok {
		track.Set(t.props, heightKey, h)
	}
	sfs, err := convert.ArrayField("Tile", n, scaleFactorsKey.Name())
	if err != nil {
		return err
	}
	var factors []int
	for _, sf := range sfs {
		f, ok := convert.Int(sf)
		if !ok {
			return convert.Shape("Tile", sf, "", ir.NumberType)
		}
		factors = append(factors, f)
	}
	track.Set(t.props, scaleFactorsKey, factors)
	return nil
}

func (tileConverter) Emit(t *Tile, o *convert.Object) {
	o.Int("width", t.Width(), true)
	h, ok := track.Get(t.props, heightKey)
	o.Int("height", h, ok)
	var sfs []*ir.Node
	for _, f := range t.ScaleFactors() {
		sfs = append(sfs, ir.FromInt(int64(f)))
	}
	o.Set("scaleFactors", convert.Always(sfs))
}

// Size is one of the preferred sizes of an image service.
type Size struct {
	Dimensions
}

func NewSize(width, height int) *Size {
	s := &Size{Dimensions{props: track.NewStore()}}
	s.SetWidth(width)
	s.SetHeight(height)
	return s
}

func (s *Size) Props() *track.Store {
	return s.props
}

type sizeConverter struct{}

var Sizes convert.Converter[*Size] = sizeConverter{}

func (sizeConverter) Resource() string { return "Size" }

func (sizeConverter) Create(n *ir.Node) (*Size, error) {
	if n.Type != ir.ObjectType {
		return nil, convert.Shape("Size", n, "", ir.ObjectType)
	}
	s := &Size{Dimensions{props: track.NewStore()}}
	if err := requireDimensions("Size", s.props, n); err != nil {
		return nil, err
	}
	return s, nil
}

func (sizeConverter) Enrich(*Size, *ir.Node) error { return nil }

func (sizeConverter) Emit(s *Size, o *convert.Object) {
	w, ok := s.Width()
	o.Int("width", w, ok)
	h, ok := s.Height()
	o.Int("height", h, ok)
}
