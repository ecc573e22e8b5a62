package iiif

import (
	"time"

	"github.com/signadot/go-iiif/convert"
	"github.com/signadot/go-iiif/ir"
	"github.com/signadot/go-iiif/track"
)

var (
	collectionsKey       = track.NewKey[[]*Collection]("collections")
	manifestsKey         = track.NewKey[[]*Manifest]("manifests")
	collectionMembersKey = track.NewKey[[]Resource]("members")
	startIndexKey        = track.NewKey[int]("startIndex")
	firstKey             = track.NewKey[*Ref]("first")
	lastKey              = track.NewKey[*Ref]("last")
	nextKey              = track.NewKey[*Ref]("next")
	prevKey              = track.NewKey[*Ref]("prev")

	pagingKeys = []track.Key[*Ref]{firstKey, lastKey, nextKey, prevKey}
)

// Collection groups manifests and other collections. Large collections
// are paged with first, last, next and prev.
type Collection struct {
	Item
	Descriptive
}

// NewCollection returns a collection carrying the default context.
func NewCollection(id, label string) *Collection {
	s := newNode(id, TypeCollection, label)
	track.Set(s, contextKey, []string{DefaultContext})
	return collectionOf(s)
}

func collectionOf(s *track.Store) *Collection {
	item, desc := node(s)
	return &Collection{Item: item, Descriptive: desc}
}

func (c *Collection) Collections() []*Collection {
	return track.Value(c.Props(), collectionsKey)
}

func (c *Collection) AddCollection(cs ...*Collection) {
	track.Append(c.Props(), collectionsKey, cs...)
}

func (c *Collection) Manifests() []*Manifest {
	return track.Value(c.Props(), manifestsKey)
}

func (c *Collection) AddManifest(ms ...*Manifest) {
	track.Append(c.Props(), manifestsKey, ms...)
}

// Members returns the mixed list of collections and manifests.
func (c *Collection) Members() []Resource {
	return track.Value(c.Props(), collectionMembersKey)
}

func (c *Collection) AddMember(rs ...Resource) {
	track.Append(c.Props(), collectionMembersKey, rs...)
}

func (c *Collection) Total() (int, bool) {
	return track.Get(c.Props(), totalKey)
}

func (c *Collection) SetTotal(t int) {
	track.Set(c.Props(), totalKey, t)
}

func (c *Collection) StartIndex() (int, bool) {
	return track.Get(c.Props(), startIndexKey)
}

func (c *Collection) SetStartIndex(i int) {
	track.Set(c.Props(), startIndexKey, i)
}

func (c *Collection) First() *Ref { return track.Value(c.Props(), firstKey) }
func (c *Collection) Last() *Ref  { return track.Value(c.Props(), lastKey) }
func (c *Collection) Next() *Ref  { return track.Value(c.Props(), nextKey) }
func (c *Collection) Prev() *Ref  { return track.Value(c.Props(), prevKey) }

// SetPaging sets the page links; empty ids clear them.
func (c *Collection) SetPaging(first, last, next, prev string) {
	for i, id := range []string{first, last, next, prev} {
		var r *Ref
		if id != "" {
			r = NewRef(id)
		}
		track.Set(c.Props(), pagingKeys[i], r)
	}
}

func (c *Collection) NavDate() (time.Time, bool) {
	return track.Get(c.Props(), navDateKey)
}

func (c *Collection) SetNavDate(t time.Time) {
	track.Set(c.Props(), navDateKey, t)
}

func (c *Collection) ViewingDirection() string {
	return track.Value(c.Props(), viewingDirectionKey)
}

func (c *Collection) SetViewingDirection(d string) {
	track.Set(c.Props(), viewingDirectionKey, d)
}

func (c *Collection) ToIR() *ir.Node {
	return convert.Encode(Collections, c)
}

type collectionConverter struct{}

var Collections convert.Converter[*Collection] = collectionConverter{}

func (collectionConverter) Resource() string { return "Collection" }

func (collectionConverter) Create(n *ir.Node) (*Collection, error) {
	s, err := createItem("Collection", n)
	if err != nil {
		return nil, err
	}
	if err := requireType("Collection", n); err != nil {
		return nil, err
	}
	return collectionOf(s), nil
}

func (collectionConverter) Enrich(c *Collection, n *ir.Node) error {
	s := c.Props()
	if err := enrichNode("Collection", s, n); err != nil {
		return err
	}
	cs, err := decodeArray("Collection", Collections, n, collectionsKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, collectionsKey, cs)
	ms, err := decodeArray("Collection", Manifests, n, manifestsKey.Name())
	if err != nil {
		return err
	}
	track.Set(s, manifestsKey, ms)
	mns, err := convert.ArrayField("Collection", n, collectionMembersKey.Name())
	if err != nil {
		return err
	}
	var members []Resource
	for _, mn := range mns {
		r, err := Decode(mn)
		if err != nil {
			return err
		}
		members = append(members, r)
	}
	track.Set(s, collectionMembersKey, members)
	for _, k := range []track.Key[int]{totalKey, startIndexKey} {
		if v, ok := convert.Int(ir.Get(n, k.Name())); ok {
			track.Set(s, k, v)
		}
	}
	for _, k := range pagingKeys {
		r, err := decodeRef(n, k.Name())
		if err != nil {
			return err
		}
		track.Set(s, k, r)
	}
	if t, ok := convert.Time(ir.Get(n, navDateKey.Name())); ok {
		track.Set(s, navDateKey, t)
	}
	enrichViewingDirection(s, n)
	return nil
}

func (collectionConverter) Emit(c *Collection, o *convert.Object) {
	s := c.Props()
	emitNode(s, o)
	o.String("viewingDirection", c.ViewingDirection())
	o.Set("navDate", convert.FromTime(track.Value(s, navDateKey)))
	o.Set("collections", convert.Always(convert.EncodeAll(Collections, c.Collections())))
	o.Set("manifests", convert.Always(convert.EncodeAll(Manifests, c.Manifests())))
	var members []*ir.Node
	for _, m := range c.Members() {
		if !track.IsEmpty(m) {
			members = append(members, m.ToIR())
		}
	}
	o.Set("members", convert.Always(members))
	for _, k := range []track.Key[int]{totalKey, startIndexKey} {
		v, ok := track.Get(s, k)
		o.Int(k.Name(), v, ok)
	}
	for _, k := range pagingKeys {
		o.Set(k.Name(), convert.Encode(Refs, track.Value(s, k)))
	}
}
