package iiif

import (
	"time"

	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

const (
	DiscoveryContext1    = "http://iiif.io/api/discovery/1/context.json"
	ContentStateContext1 = "http://iiif.io/api/content-state/1/context.json"

	TypeOrderedCollection   = "OrderedCollection"
	TypeContentStateService = "ContentStateService"

	ActivityCreate = "Create"
	ActivityUpdate = "Update"
	ActivityDelete = "Delete"
)

var (
	orderedItemsKey   = track.NewKey[[]*Activity]("orderedItems")
	activityTypeKey   = track.NewKey[string]("type")
	activityObjectKey = track.NewKey[*ActivityObject]("object")
	endTimeKey        = track.NewKey[time.Time]("endTime")
	objectIDKey       = track.NewKey[string]("id")
)

// DiscoveryService publishes changes to resources as an ordered list of
// activities.
type DiscoveryService struct {
	serviceBase
}

func NewDiscoveryService(context, id, profile string) *DiscoveryService {
	ds := &DiscoveryService{serviceBase{Item: newItem(track.NewStore(), id, TypeOrderedCollection)}}
	ds.SetContext(context)
	ds.SetProfile(profile)
	return ds
}

func (ds *DiscoveryService) Activities() []*Activity {
	return track.Value(ds.props, orderedItemsKey)
}

func (ds *DiscoveryService) AddActivity(as ...*Activity) {
	track.Append(ds.props, orderedItemsKey, as...)
}

// RemoveActivity drops a from the list.
func (ds *DiscoveryService) RemoveActivity(a *Activity) {
	track.Remove(ds.props, orderedItemsKey, func(e *Activity) bool { return e == a })
}

// ActivitiesOf returns the activities whose object is id, oldest first.
func (ds *DiscoveryService) ActivitiesOf(id string) []*Activity {
	var res []*Activity
	for _, a := range ds.Activities() {
		if o := a.Object(); o != nil && o.ID() == id {
			res = append(res, a)
		}
	}
	return res
}

func (ds *DiscoveryService) ToIR() *ir.Node {
	return convert.Encode(DiscoveryServices, ds)
}

type discoveryServiceConverter struct{}

var DiscoveryServices convert.Converter[*DiscoveryService] = discoveryServiceConverter{}

func (discoveryServiceConverter) Resource() string { return "DiscoveryService" }

func (discoveryServiceConverter) Create(n *ir.Node) (*DiscoveryService, error) {
	s, err := createService("DiscoveryService", n)
	if err != nil {
		return nil, err
	}
	return &DiscoveryService{serviceBase{Item: Item{props: s}}}, nil
}

func (discoveryServiceConverter) Enrich(ds *DiscoveryService, n *ir.Node) error {
	if err := enrichService("DiscoveryService", ds.props, n); err != nil {
		return err
	}
	as, err := decodeArray("DiscoveryService", Activities, n, orderedItemsKey.Name())
	if err != nil {
		return err
	}
	track.Set(ds.props, orderedItemsKey, as)
	return nil
}

func (discoveryServiceConverter) Emit(ds *DiscoveryService, o *convert.Object) {
	emitService(ds.props, o)
	o.Set("orderedItems", convert.Always(convert.EncodeAll(Activities, ds.Activities())))
	o.Set("service", emitServices(ds.Services()))
}

// Activity records one change to a resource.
type Activity struct {
	props *track.Store
}

func NewActivity(typ string, object *ActivityObject, endTime time.Time) *Activity {
	a := &Activity{props: track.NewStore()}
	track.Set(a.props, activityTypeKey, typ)
	track.Set(a.props, activityObjectKey, object)
	if !endTime.IsZero() {
		track.Set(a.props, endTimeKey, endTime)
	}
	return a
}

func (a *Activity) Props() *track.Store {
	return a.props
}

func (a *Activity) Type() string {
	return track.Value(a.props, activityTypeKey)
}

func (a *Activity) Object() *ActivityObject {
	return track.Value(a.props, activityObjectKey)
}

// EndTime reports when the change finished. It is false when unset or
// written in a form kept raw.
func (a *Activity) EndTime() (time.Time, bool) {
	return track.Get(a.props, endTimeKey)
}

func (a *Activity) ToIR() *ir.Node {
	return convert.Encode(Activities, a)
}

type activityConverter struct{}

var Activities convert.Converter[*Activity] = activityConverter{}

func (activityConverter) Resource() string { return "Activity" }

func (activityConverter) Create(n *ir.Node) (*Activity, error) {
	if n.Type != ir.ObjectType {
		return nil, convert.Shape("Activity", n, "", ir.ObjectType)
	}
	t, err := convert.RequiredString("Activity", n, activityTypeKey.Name())
	if err != nil {
		return nil, err
	}
	a := &Activity{props: track.NewStore()}
	track.Set(a.props, activityTypeKey, t)
	return a, nil
}

func (activityConverter) Enrich(a *Activity, n *ir.Node) error {
	on, err := convert.ObjectField("Activity", n, activityObjectKey.Name())
	if err != nil {
		return err
	}
	if on != nil {
		obj, err := convert.Decode(ActivityObjects, on)
		if err != nil {
			return err
		}
		track.Set(a.props, activityObjectKey, obj)
	}
	if t, ok := convert.Time(ir.Get(n, endTimeKey.Name())); ok {
		track.Set(a.props, endTimeKey, t)
	}
	return nil
}

func (activityConverter) Emit(a *Activity, o *convert.Object) {
	o.String("type", a.Type())
	o.Set("object", convert.Encode(ActivityObjects, a.Object()))
	o.Set("endTime", convert.FromTime(track.Value(a.props, endTimeKey)))
}

// ActivityObject is the resource an activity changed.
type ActivityObject struct {
	props *track.Store
}

func NewActivityObject(id, typ string) *ActivityObject {
	o := &ActivityObject{props: track.NewStore()}
	track.Set(o.props, objectIDKey, id)
	track.Set(o.props, activityTypeKey, typ)
	return o
}

func (o *ActivityObject) Props() *track.Store {
	return o.props
}

func (o *ActivityObject) ID() string {
	return track.Value(o.props, objectIDKey)
}

func (o *ActivityObject) Type() string {
	return track.Value(o.props, activityTypeKey)
}

type activityObjectConverter struct{}

var ActivityObjects convert.Converter[*ActivityObject] = activityObjectConverter{}

func (activityObjectConverter) Resource() string { return "ActivityObject" }

func (activityObjectConverter) Create(n *ir.Node) (*ActivityObject, error) {
	id, err := convert.RequiredString("ActivityObject", n, objectIDKey.Name())
	if err != nil {
		return nil, err
	}
	o := &ActivityObject{props: track.NewStore()}
	track.Set(o.props, objectIDKey, id)
	return o, nil
}

func (activityObjectConverter) Enrich(o *ActivityObject, n *ir.Node) error {
	if t, ok := convert.String(ir.Get(n, activityTypeKey.Name())); ok {
		track.Set(o.props, activityTypeKey, t)
	}
	return nil
}

func (activityObjectConverter) Emit(ob *ActivityObject, o *convert.Object) {
	o.String("id", ob.ID())
	o.String("type", ob.Type())
}

// ContentStateService points at an endpoint accepting content state
// annotations for deep links.
type ContentStateService struct {
	serviceBase
}

func NewContentStateService(context, id, profile string) *ContentStateService {
	cs := &ContentStateService{serviceBase{Item: newItem(track.NewStore(), id, TypeContentStateService)}}
	cs.SetContext(context)
	cs.SetProfile(profile)
	return cs
}

func (cs *ContentStateService) Label() string {
	return firstText(track.Value(cs.props, labelKey))
}

func (cs *ContentStateService) ToIR() *ir.Node {
	return convert.Encode(ContentStateServices, cs)
}

type contentStateServiceConverter struct{}

var ContentStateServices convert.Converter[*ContentStateService] = contentStateServiceConverter{}

func (contentStateServiceConverter) Resource() string { return "ContentStateService" }

func (contentStateServiceConverter) Create(n *ir.Node) (*ContentStateService, error) {
	s, err := createService("ContentStateService", n)
	if err != nil {
		return nil, err
	}
	return &ContentStateService{serviceBase{Item: Item{props: s}}}, nil
}

func (contentStateServiceConverter) Enrich(cs *ContentStateService, n *ir.Node) error {
	if err := enrichService("ContentStateService", cs.props, n); err != nil {
		return err
	}
	ls, err := decodeLangStrings(n, labelKey.Name())
	if err != nil {
		return err
	}
	track.Set(cs.props, labelKey, ls)
	return nil
}

func (contentStateServiceConverter) Emit(cs *ContentStateService, o *convert.Object) {
	emitService(cs.props, o)
	o.Set("label", emitLangStrings(track.Value(cs.props, labelKey)))
	o.Set("service", emitServices(cs.Services()))
}
