package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

// DefaultContext is the JSON-LD context of the Presentation API 2.x.
const DefaultContext = "http://iiif.io/api/presentation/2/context.json"

const (
	TypeCollection     = "sc:Collection"
	TypeManifest       = "sc:Manifest"
	TypeSequence       = "sc:Sequence"
	TypeCanvas         = "sc:Canvas"
	TypeRange          = "sc:Range"
	TypeAnnotationList = "sc:AnnotationList"
	TypeLayer          = "sc:Layer"
	TypeAnnotation     = "oa:Annotation"
	TypeImage          = "dctypes:Image"
	TypeChoice         = "oa:Choice"

	MotivationPainting = "sc:painting"
)

var (
	contextKey = track.NewKey[[]string]("@context")
	idKey      = track.NewKey[string]("@id")
	typeKey    = track.NewKey[string]("@type")
	serviceKey = track.NewKey[[]Service]("service")
)

// Resource is implemented by every addressable document node.
type Resource interface {
	track.Trackable
	ID() string
	Type() string
	ToIR() *ir.Node
}

// Item is the identity capability: context, id, type and services.
type Item struct {
	props *track.Store
}

func newItem(s *track.Store, id, typ string) Item {
	track.Set(s, idKey, id)
	track.Set(s, typeKey, typ)
	return Item{props: s}
}

func (i Item) Props() *track.Store {
	return i.props
}

// ID returns the @id. It is fixed when the item is created.
func (i Item) ID() string {
	return track.Value(i.props, idKey)
}

func (i Item) Type() string {
	return track.Value(i.props, typeKey)
}

func (i Item) SetType(t string) {
	track.Set(i.props, typeKey, t)
}

// Context returns the JSON-LD context, the last one if several are given,
// or DefaultContext if none is set.
func (i Item) Context() string {
	cs := track.Value(i.props, contextKey)
	if len(cs) == 0 {
		return DefaultContext
	}
	return cs[len(cs)-1]
}

// Contexts returns the explicitly set contexts.
func (i Item) Contexts() []string {
	return track.Value(i.props, contextKey)
}

// SetContext sets the contexts written as @context. Without a call the
// field is omitted and readers assume DefaultContext.
func (i Item) SetContext(cs ...string) {
	track.Set(i.props, contextKey, cs)
}

func (i Item) Services() []Service {
	return track.Value(i.props, serviceKey)
}

func (i Item) SetServices(ss ...Service) {
	track.Set(i.props, serviceKey, ss)
}

func (i Item) AddService(ss ...Service) {
	track.Append(i.props, serviceKey, ss...)
}

// enrichItem reads the identity fields other than @id, which the
// resource's Create handles.
func enrichItem(resource string, s *track.Store, n *ir.Node) error {
	var cs []string
	for _, c := range convert.OneOrMany(ir.Get(n, "@context")) {
		str, ok := convert.String(c)
		if !ok {
			// contexts with embedded definitions stay raw
			cs = nil
			break
		}
		cs = append(cs, str)
	}
	track.Set(s, contextKey, cs)
	if t, ok := convert.String(ir.Get(n, "@type")); ok {
		track.Set(s, typeKey, t)
	}
	services, err := decodeServices(resource, n)
	if err != nil {
		return err
	}
	track.Set(s, serviceKey, services)
	return nil
}

func emitItem(s *track.Store, o *convert.Object) {
	o.Set("@context", convert.Collapse(convert.Strings(track.Value(s, contextKey))))
	o.String("@id", track.Value(s, idKey))
	o.String("@type", track.Value(s, typeKey))
	o.Set("service", emitServices(track.Value(s, serviceKey)))
}

// createItem reads the required @id of n into a new store.
func createItem(resource string, n *ir.Node) (*track.Store, error) {
	if n.Type != ir.ObjectType {
		return nil, convert.Shape(resource, n, "", ir.ObjectType)
	}
	id, err := convert.RequiredString(resource, n, "@id")
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, convert.Missing(resource, n, "@id")
	}
	s := track.NewStore()
	track.Set(s, idKey, id)
	return s, nil
}

// requireType checks that n names its @type. Presentation nodes need it;
// links, text values, services and content resources do not.
func requireType(resource string, n *ir.Node) error {
	_, err := convert.RequiredString(resource, n, typeKey.Name())
	return err
}

// createOptionalItem is createItem for resources whose @id may be absent.
func createOptionalItem(resource string, n *ir.Node) (*track.Store, error) {
	if n.Type != ir.ObjectType {
		return nil, convert.Shape(resource, n, "", ir.ObjectType)
	}
	s := track.NewStore()
	if v := ir.Get(n, "@id"); v != nil {
		id, ok := convert.String(v)
		if !ok {
			return nil, convert.Shape(resource, n, "@id", ir.StringType)
		}
		track.Set(s, idKey, id)
	}
	return s, nil
}
