package iiif

import (
	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

const (
	AuthContext1       = "http://iiif.io/api/auth/1/context.json"
	AuthProfileLogin   = "http://iiif.io/api/auth/1/login"
	AuthProfileClickth = "http://iiif.io/api/auth/1/clickthrough"
	AuthProfileKiosk   = "http://iiif.io/api/auth/1/kiosk"
	AuthProfileExt     = "http://iiif.io/api/auth/1/external"
	AuthProfileToken   = "http://iiif.io/api/auth/1/token"
	AuthProfileLogout  = "http://iiif.io/api/auth/1/logout"
)

var (
	authHeaderKey             = track.NewKey[string]("header")
	authDescriptionKey        = track.NewKey[string]("description")
	authConfirmLabelKey       = track.NewKey[string]("confirmLabel")
	authFailureHeaderKey      = track.NewKey[string]("failureHeader")
	authFailureDescriptionKey = track.NewKey[string]("failureDescription")

	authTextKeys = []track.Key[string]{
		authHeaderKey, authDescriptionKey, authConfirmLabelKey,
		authFailureHeaderKey, authFailureDescriptionKey,
	}
)

// AuthService describes an access control service. Token and logout
// services nest inside the login service through Services.
type AuthService struct {
	serviceBase
}

func NewAuthService(id, profile, label string) *AuthService {
	s := track.NewStore()
	track.Set(s, idKey, id)
	as := &AuthService{serviceBase{Item: Item{props: s}}}
	as.SetContext(AuthContext1)
	as.SetProfile(profile)
	as.SetLabel(label)
	return as
}

func (as *AuthService) Label() string {
	return firstText(track.Value(as.props, labelKey))
}

func (as *AuthService) SetLabel(l string) {
	if l == "" {
		track.Set(as.props, labelKey, nil)
		return
	}
	track.Set(as.props, labelKey, []*LangString{Text(l)})
}

func (as *AuthService) Header() string {
	return track.Value(as.props, authHeaderKey)
}

func (as *AuthService) SetHeader(v string) {
	track.Set(as.props, authHeaderKey, v)
}

func (as *AuthService) Description() string {
	return track.Value(as.props, authDescriptionKey)
}

func (as *AuthService) SetDescription(v string) {
	track.Set(as.props, authDescriptionKey, v)
}

func (as *AuthService) ConfirmLabel() string {
	return track.Value(as.props, authConfirmLabelKey)
}

func (as *AuthService) SetConfirmLabel(v string) {
	track.Set(as.props, authConfirmLabelKey, v)
}

func (as *AuthService) FailureHeader() string {
	return track.Value(as.props, authFailureHeaderKey)
}

func (as *AuthService) SetFailureHeader(v string) {
	track.Set(as.props, authFailureHeaderKey, v)
}

func (as *AuthService) FailureDescription() string {
	return track.Value(as.props, authFailureDescriptionKey)
}

func (as *AuthService) SetFailureDescription(v string) {
	track.Set(as.props, authFailureDescriptionKey, v)
}

func (as *AuthService) ToIR() *ir.Node {
	return convert.Encode(AuthServices, as)
}

type authServiceConverter struct{}

var AuthServices convert.Converter[*AuthService] = authServiceConverter{}

func (authServiceConverter) Resource() string { return "AuthService" }

func (authServiceConverter) Create(n *ir.Node) (*AuthService, error) {
	s, err := createService("AuthService", n)
	if err != nil {
		return nil, err
	}
	return &AuthService{serviceBase{Item: Item{props: s}}}, nil
}

func (authServiceConverter) Enrich(as *AuthService, n *ir.Node) error {
	if err := enrichService("AuthService", as.props, n); err != nil {
		return err
	}
	ls, err := decodeLangStrings(n, labelKey.Name())
	if err != nil {
		return err
	}
	track.Set(as.props, labelKey, ls)
	for _, k := range authTextKeys {
		if v, ok := convert.String(ir.Get(n, k.Name())); ok {
			track.Set(as.props, k, v)
		}
	}
	return nil
}

func (authServiceConverter) Emit(as *AuthService, o *convert.Object) {
	emitService(as.props, o)
	o.Set("label", emitLangStrings(track.Value(as.props, labelKey)))
	for _, k := range authTextKeys {
		o.String(k.Name(), track.Value(as.props, k))
	}
	o.Set("service", emitServices(as.Services()))
}
