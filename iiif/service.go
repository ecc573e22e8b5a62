package iiif

import (
	"slices"
	"strings"
	"sync"

	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

// Service is a service descriptor attached to a resource. Descriptors are
// referenced, not owned: the same value may be attached to several
// resources.
type Service interface {
	track.Trackable
	ID() string
	Profile() string
	ToIR() *ir.Node
}

// ServiceKind tells the decoder how to recognise and build one kind of
// service descriptor.
type ServiceKind struct {
	Name string
	// Types lists @type values identifying the kind.
	Types []string
	// Profiles lists substrings of a profile or @context URI identifying
	// the kind.
	Profiles []string
	Decode   func(n *ir.Node) (Service, error)
}

var (
	kindsMu sync.RWMutex
	kinds   []ServiceKind
)

// RegisterService adds a service kind. Kinds registered later are matched
// first, so a registration can override a built in kind.
func RegisterService(k ServiceKind) {
	kindsMu.Lock()
	defer kindsMu.Unlock()
	kinds = append([]ServiceKind{k}, kinds...)
}

func init() {
	RegisterService(ServiceKind{
		Name:     "auth",
		Types:    []string{"AuthCookieService1", "AuthTokenService1", "AuthLogoutService1", "AuthAccessService2", "AuthAccessTokenService2", "AuthProbeService2", "AuthLogoutService2"},
		Profiles: []string{"iiif.io/api/auth/"},
		Decode:   decodeAs(AuthServices),
	})
	RegisterService(ServiceKind{
		Name:     "search",
		Types:    []string{"SearchService1", "SearchService2", "AutoCompleteService1", "AutoCompleteService2"},
		Profiles: []string{"iiif.io/api/search/"},
		Decode:   decodeAs(SearchServices),
	})
	RegisterService(ServiceKind{
		Name:     "image",
		Types:    []string{"ImageService1", "ImageService2", "ImageService3", "iiif:ImageProfile"},
		Profiles: []string{"iiif.io/api/image/"},
		Decode:   decodeAs(ImageServices),
	})
	RegisterService(ServiceKind{
		Name:     "discovery",
		Types:    []string{TypeOrderedCollection},
		Profiles: []string{"discovery"},
		Decode:   decodeAs(DiscoveryServices),
	})
	RegisterService(ServiceKind{
		Name:     "content-state",
		Types:    []string{TypeContentStateService},
		Profiles: []string{"content-state"},
		Decode:   decodeAs(ContentStateServices),
	})
}

func decodeAs[T Service](c convert.Converter[T]) func(*ir.Node) (Service, error) {
	return func(n *ir.Node) (Service, error) {
		v, err := convert.Decode(c, n)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// KindOf returns the name of the kind n would decode as, "generic" if no
// registered kind matches.
func KindOf(n *ir.Node) string {
	if k := matchKind(n); k != nil {
		return k.Name
	}
	return "generic"
}

// matchKind picks a kind by @type, then by profile, then by @context.
func matchKind(n *ir.Node) *ServiceKind {
	if n == nil || n.Type != ir.ObjectType {
		return nil
	}
	kindsMu.RLock()
	defer kindsMu.RUnlock()
	if t, ok := convert.String(ir.Get(n, "@type")); ok {
		for i := range kinds {
			if slices.Contains(kinds[i].Types, t) {
				return &kinds[i]
			}
		}
	}
	for _, field := range []string{"profile", "@context"} {
		for _, v := range convert.OneOrMany(ir.Get(n, field)) {
			uri, ok := convert.String(v)
			if !ok {
				continue
			}
			for i := range kinds {
				for _, p := range kinds[i].Profiles {
					if strings.Contains(uri, p) {
						return &kinds[i]
					}
				}
			}
		}
	}
	return nil
}

// DecodeService decodes a single service descriptor.
func DecodeService(n *ir.Node) (Service, error) {
	if k := matchKind(n); k != nil {
		return k.Decode(n)
	}
	return convert.Decode(GenericServices, n)
}

func decodeServices(resource string, n *ir.Node) ([]Service, error) {
	var res []Service
	for _, v := range convert.OneOrMany(ir.Get(n, serviceKey.Name())) {
		s, err := DecodeService(v)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}

func emitServices(ss []Service) *ir.Node {
	var ns []*ir.Node
	for _, s := range ss {
		if track.IsEmpty(s) {
			continue
		}
		ns = append(ns, s.ToIR())
	}
	return convert.Collapse(ns)
}

// serviceBase is the part every service descriptor shares.
type serviceBase struct {
	Item
}

func (s serviceBase) Profile() string {
	return profileOf(s.props)
}

func (s serviceBase) SetProfile(p string) {
	track.Set(s.props, profileKey, p)
}

func createService(resource string, n *ir.Node) (*track.Store, error) {
	return createItem(resource, n)
}

func enrichService(resource string, s *track.Store, n *ir.Node) error {
	if err := enrichItem(resource, s, n); err != nil {
		return err
	}
	if p, ok := convert.String(ir.Get(n, profileKey.Name())); ok {
		track.Set(s, profileKey, p)
	}
	return nil
}

func emitService(s *track.Store, o *convert.Object) {
	o.Set("@context", convert.Collapse(convert.Strings(track.Value(s, contextKey))))
	o.String("@id", track.Value(s, idKey))
	o.String("@type", track.Value(s, typeKey))
	o.String("profile", track.Value(s, profileKey))
}

// GenericService holds a service descriptor of no registered kind.
type GenericService struct {
	serviceBase
	scalar bool
}

func NewGenericService(context, id, profile string) *GenericService {
	g := &GenericService{serviceBase: serviceBase{Item: Item{props: track.NewStore()}}}
	track.Set(g.props, idKey, id)
	g.SetContext(context)
	g.SetProfile(profile)
	return g
}

func (g *GenericService) ToIR() *ir.Node {
	return convert.Encode(GenericServices, g)
}

type genericServiceConverter struct{}

var GenericServices convert.Converter[*GenericService] = genericServiceConverter{}

func (genericServiceConverter) Resource() string { return "Service" }

func (genericServiceConverter) Create(n *ir.Node) (*GenericService, error) {
	if n.Type == ir.StringType {
		s := track.NewStore()
		track.Set(s, idKey, n.String)
		return &GenericService{serviceBase: serviceBase{Item: Item{props: s}}, scalar: true}, nil
	}
	s, err := createOptionalItem("Service", n)
	if err != nil {
		return nil, err
	}
	return &GenericService{serviceBase: serviceBase{Item: Item{props: s}}}, nil
}

func (genericServiceConverter) Enrich(g *GenericService, n *ir.Node) error {
	if n.Type != ir.ObjectType {
		return nil
	}
	if err := enrichService("Service", g.props, n); err != nil {
		return err
	}
	ls, err := decodeLangStrings(n, labelKey.Name())
	if err != nil {
		return err
	}
	track.Set(g.props, labelKey, ls)
	return nil
}

func (genericServiceConverter) Emit(g *GenericService, o *convert.Object) {
	emitService(g.props, o)
	o.Set("label", emitLangStrings(track.Value(g.props, labelKey)))
	o.Set("service", emitServices(g.Services()))
}

func (genericServiceConverter) Scalar(g *GenericService) *ir.Node {
	if !g.scalar {
		return nil
	}
	return scalarID(g.props)
}
