package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

const (
	SearchContext0      = "http://iiif.io/api/search/0/context.json"
	SearchProfile0      = "http://iiif.io/api/search/0/search"
	AutoCompleteProfile = "http://iiif.io/api/search/0/autocomplete"
)

// SearchService describes a content search endpoint. An autocomplete
// service nests inside it through Services.
type SearchService struct {
	serviceBase
}

func NewSearchService(id, profile string) *SearchService {
	s := track.NewStore()
	track.Set(s, idKey, id)
	ss := &SearchService{serviceBase{Item: Item{props: s}}}
	ss.SetContext(SearchContext0)
	ss.SetProfile(profile)
	return ss
}

func (ss *SearchService) Label() string {
	return firstText(track.Value(ss.props, labelKey))
}

// AutoComplete returns the nested autocomplete service, if any.
func (ss *SearchService) AutoComplete() *SearchService {
	for _, s := range ss.Services() {
		if sub, ok := s.(*SearchService); ok && sub.Profile() == AutoCompleteProfile {
			return sub
		}
	}
	return nil
}

func (ss *SearchService) ToIR() *ir.Node {
	return convert.Encode(SearchServices, ss)
}

type searchServiceConverter struct{}

var SearchServices convert.Converter[*SearchService] = searchServiceConverter{}

func (searchServiceConverter) Resource() string { return "SearchService" }

func (searchServiceConverter) Create(n *ir.Node) (*SearchService, error) {
	s, err := createService("SearchService", n)
	if err != nil {
		return nil, err
	}
	return &SearchService{serviceBase{Item: Item{props: s}}}, nil
}

func (searchServiceConverter) Enrich(ss *SearchService, n *ir.Node) error {
	if err := enrichService("SearchService", ss.props, n); err != nil {
		return err
	}
	ls, err := decodeLangStrings(n, labelKey.Name())
	if err != nil {
		return err
	}
	track.Set(ss.props, labelKey, ls)
	return nil
}

func (searchServiceConverter) Emit(ss *SearchService, o *convert.Object) {
	emitService(ss.props, o)
	o.Set("label", emitLangStrings(track.Value(ss.props, labelKey)))
	o.Set("service", emitServices(ss.Services()))
}
