package track

type EventKind int

const (
	Changing EventKind = iota
	Changed
)

func (k EventKind) String() string {
	switch k {
	case Changing:
		return "changing"
	case Changed:
		return "changed"
	}
	return "unknown"
}

// Event reports a mutation of one key. Old and New are effective values;
// nil means absent.
type Event struct {
	Kind EventKind
	Key  string
	Old  any
	New  any
}

type observer struct {
	id int
	f  func(Event)
}

// Observe registers f for all subsequent mutations and returns a function
// that unregisters it.
func (s *Store) Observe(f func(Event)) func() {
	s.nextObs++
	id := s.nextObs
	s.observers = append(s.observers, observer{id: id, f: f})
	return func() {
		for i := range s.observers {
			if s.observers[i].id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(e Event) {
	for _, o := range s.observers {
		o.f(e)
	}
}
