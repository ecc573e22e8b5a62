package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

const (
	LeftToRight = "left-to-right"
	RightToLeft = "right-to-left"
	TopToBottom = "top-to-bottom"
	BottomToTop = "bottom-to-top"
)

var (
	viewingDirectionKey = track.NewKey[string]("viewingDirection")
	startCanvasKey      = track.NewKey[*Ref]("startCanvas")
)

// node is the capability pair every presentation resource composes.
func node(s *track.Store) (Item, Descriptive) {
	return Item{props: s}, Descriptive{props: s}
}

// newNode returns a store with @id, @type and a label set.
func newNode(id, typ, label string) *track.Store {
	s := track.NewStore()
	newItem(s, id, typ)
	if label != "" {
		track.Set(s, labelKey, []*LangString{Text(label)})
	}
	return s
}

func enrichNode(resource string, s *track.Store, n *ir.Node) error {
	if err := enrichItem(resource, s, n); err != nil {
		return err
	}
	return enrichDescriptive(resource, s, n)
}

func emitNode(s *track.Store, o *convert.Object) {
	emitItem(s, o)
	emitDescriptive(s, o)
}

func enrichViewingDirection(s *track.Store, n *ir.Node) {
	if v, ok := convert.String(ir.Get(n, viewingDirectionKey.Name())); ok {
		track.Set(s, viewingDirectionKey, v)
	}
}

func enrichStartCanvas(s *track.Store, n *ir.Node) error {
	r, err := decodeRef(n, startCanvasKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, startCanvasKey, r)
	return nil
}

// scalarID renders a resource decoded from a bare URI as that URI. An
// empty URI stores nothing, so an empty store renders as "".
func scalarID(s *track.Store) *ir.Node {
	switch {
	case s.Len() == 0:
		return ir.FromString("")
	case s.Len() == 1 && s.Has(idKey.Name()):
		return ir.FromString(track.Value(s, idKey))
	}
	return nil
}

// decodeArray decodes a field that must be an array if present.
func decodeArray[T track.Trackable](resource string, c convert.Converter[T], n *ir.Node, field string) ([]T, error) {
	vs, err := convert.ArrayField(resource, n, field)
	if err != nil {
		return nil, err
	}
	return convert.DecodeAll(c, vs)
}

// decodeURIs decodes a field that must be an array of strings if present.
func decodeURIs(resource string, n *ir.Node, field string) ([]string, error) {
	vs, err := convert.ArrayField(resource, n, field)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, v := range vs {
		s, ok := convert.String(v)
		if !ok {
			return nil, convert.Shape(resource, v, "", ir.StringType)
		}
		res = append(res, s)
	}
	return res, nil
}
