package track

import (
	"slices"

	"github.com/signadot/go-iiif/debug"
)

// Trackable is implemented by every type whose properties live in a Store.
type Trackable interface {
	Props() *Store
}

// Store maps stable keys to descriptors. The zero value is ready to use.
// A Store is not safe for concurrent mutation.
type Store struct {
	descs map[string]*Descriptor
	order []string

	observers []observer
	nextObs   int
}

func NewStore() *Store {
	return &Store{}
}

// Props makes a Store trackable by itself.
func (s *Store) Props() *Store {
	return s
}

// Lookup returns the descriptor for name, or nil.
func (s *Store) Lookup(name string) *Descriptor {
	return s.descs[name]
}

func (s *Store) Has(name string) bool {
	_, ok := s.descs[name]
	return ok
}

// Raw returns the effective value under name regardless of its type.
func (s *Store) Raw(name string) (any, bool) {
	d := s.descs[name]
	if d == nil {
		return nil, false
	}
	return d.Value(), true
}

func (s *Store) IsModified(name string) bool {
	d := s.descs[name]
	return d != nil && d.IsModified()
}

func (s *Store) IsAdditional(name string) bool {
	d := s.descs[name]
	return d != nil && d.additional
}

// SetAdditional stores v under name. If name is new the descriptor is
// flagged additional; an existing descriptor keeps its flag.
func (s *Store) SetAdditional(name string, v any) {
	s.set(name, v, true)
}

// Clear removes name from the store.
func (s *Store) Clear(name string) {
	s.set(name, nil, false)
}

// Len returns the number of properties.
func (s *Store) Len() int {
	return len(s.descs)
}

// Keys returns the property names in the order they were first set.
func (s *Store) Keys() []string {
	return slices.Clone(s.order)
}

// AdditionalKeys returns the names of additional properties in the order
// they were first set.
func (s *Store) AdditionalKeys() []string {
	var res []string
	for _, k := range s.order {
		if s.descs[k].additional {
			res = append(res, k)
		}
	}
	return res
}

func (s *Store) set(name string, v any, additional bool) {
	d := s.descs[name]
	if IsEmpty(v) {
		if d == nil {
			return
		}
		old := d.Value()
		s.notify(Event{Kind: Changing, Key: name, Old: old})
		delete(s.descs, name)
		s.order = slices.DeleteFunc(s.order, func(k string) bool { return k == name })
		if debug.Track() {
			debug.Logf("track: clear %s\n", name)
		}
		s.notify(Event{Kind: Changed, Key: name, Old: old})
		return
	}
	if d == nil {
		s.notify(Event{Kind: Changing, Key: name, New: v})
		if s.descs == nil {
			s.descs = map[string]*Descriptor{}
		}
		s.descs[name] = &Descriptor{original: v, additional: additional}
		s.order = append(s.order, name)
		if debug.Track() {
			debug.Logf("track: create %s additional=%t\n", name, additional)
		}
		s.notify(Event{Kind: Changed, Key: name, New: v})
		return
	}
	old := d.Value()
	s.notify(Event{Kind: Changing, Key: name, Old: old, New: v})
	d.modified = v
	d.hasModified = true
	if debug.Track() {
		debug.Logf("track: modify %s modified=%t\n", name, d.IsModified())
	}
	s.notify(Event{Kind: Changed, Key: name, Old: old, New: v})
}

// Commit makes every effective value the new original, so that nothing
// reports as modified.
func (s *Store) Commit() {
	for _, d := range s.descs {
		if d.hasModified {
			d.original = d.modified
			d.modified = nil
			d.hasModified = false
		}
	}
}

// Change describes one modified property.
type Change struct {
	Key      string
	Original any
	Value    any
}

// Changes lists the modified properties in key order.
func (s *Store) Changes() []Change {
	var res []Change
	for _, k := range s.order {
		d := s.descs[k]
		if d.IsModified() {
			res = append(res, Change{Key: k, Original: d.original, Value: d.modified})
		}
	}
	return res
}

// Equal reports whether s and o hold the same keys with equal effective
// values and flags. Key order is not compared.
func (s *Store) Equal(o *Store) bool {
	if s == nil || o == nil {
		return (s == nil || len(s.descs) == 0) && (o == nil || len(o.descs) == 0)
	}
	if len(s.descs) != len(o.descs) {
		return false
	}
	for k, d := range s.descs {
		od := o.descs[k]
		if od == nil || od.additional != d.additional {
			return false
		}
		if !Equal(d.Value(), od.Value()) {
			return false
		}
	}
	return true
}
