package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

var (
	heightKey = track.NewKey[int]("height")
	widthKey  = track.NewKey[int]("width")
)

// Dimensions is the height and width capability.
type Dimensions struct {
	props *track.Store
}

func (d Dimensions) Height() (int, bool) {
	return track.Get(d.props, heightKey)
}

func (d Dimensions) Width() (int, bool) {
	return track.Get(d.props, widthKey)
}

func (d Dimensions) SetHeight(h int) {
	track.Set(d.props, heightKey, h)
}

func (d Dimensions) SetWidth(w int) {
	track.Set(d.props, widthKey, w)
}

// requireDimensions reads a mandatory height and width.
func requireDimensions(resource string, s *track.Store, n *ir.Node) error {
	h, err := convert.RequiredInt(resource, n, heightKey.Name())
	if err != nil {
		return err
	}
	w, err := convert.RequiredInt(resource, n, widthKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, heightKey, h)
	track.Set(s, widthKey, w)
	return nil
}

// enrichDimensions reads an optional height and width.
func enrichDimensions(s *track.Store, n *ir.Node) {
	if h, ok := convert.Int(ir.Get(n, heightKey.Name())); ok {
		track.Set(s, heightKey, h)
	}
	if w, ok := convert.Int(ir.Get(n, widthKey.Name())); ok {
		track.Set(s, widthKey, w)
	}
}

func emitDimensions(s *track.Store, o *convert.Object) {
	h, ok := track.Get(s, heightKey)
	o.Int("height", h, ok)
	w, ok := track.Get(s, widthKey)
	o.Int("width", w, ok)
}
