package track

// Key is a typed selector for one property. Two keys with the same name
// address the same descriptor.
type Key[V any] struct {
	name string
}

func NewKey[V any](name string) Key[V] {
	return Key[V]{name: name}
}

func (k Key[V]) Name() string {
	return k.name
}

func (k Key[V]) String() string {
	return k.name
}

// Get returns the effective value under k. The second result is false if
// the key is unset or holds a value of another type, as happens when an
// additional raw value occupies a key.
func Get[V any](s *Store, k Key[V]) (V, bool) {
	var zero V
	d := s.descs[k.name]
	if d == nil {
		return zero, false
	}
	v, ok := d.Value().(V)
	if !ok {
		return zero, false
	}
	return v, true
}

// Value is Get without the presence flag.
func Value[V any](s *Store, k Key[V]) V {
	v, _ := Get(s, k)
	return v
}

// Original returns the value k was created with.
func Original[V any](s *Store, k Key[V]) (V, bool) {
	var zero V
	d := s.descs[k.name]
	if d == nil {
		return zero, false
	}
	v, ok := d.original.(V)
	return v, ok
}

// Set stores v under k as a declared property. An empty v clears k.
func Set[V any](s *Store, k Key[V], v V) {
	s.set(k.name, v, false)
}

// Update replaces the value under k with f applied to the current value
// (the zero value if unset).
func Update[V any](s *Store, k Key[V], f func(V) V) {
	cur, _ := Get(s, k)
	Set(s, k, f(cur))
}

// Append adds vs to the slice stored under k.
func Append[E any](s *Store, k Key[[]E], vs ...E) {
	if len(vs) == 0 {
		return
	}
	Update(s, k, func(cur []E) []E {
		next := make([]E, 0, len(cur)+len(vs))
		next = append(next, cur...)
		return append(next, vs...)
	})
}

// Remove drops the elements of the slice under k for which drop is true.
func Remove[E any](s *Store, k Key[[]E], drop func(E) bool) {
	Update(s, k, func(cur []E) []E {
		var next []E
		for _, e := range cur {
			if !drop(e) {
				next = append(next, e)
			}
		}
		return next
	})
}
