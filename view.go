package navi

import "sync"

// View is a handle to a renderable view. Implementations toggle a
// hidden marker on the underlying element.
type View interface {
	Show()
	Hide()
}

// ViewLookup locates views by identifier. ok is the only signal that a
// view exists: when it is true the returned View must be usable, and
// when there is no such view LookupView must return (nil, false). A
// nil interface reported with ok is treated as missing, but a typed nil
// pointer is not detected.
type ViewLookup interface {
	LookupView(id string) (View, bool)
}

type ViewLookupFunc func(string) (View, bool)

func (f ViewLookupFunc) LookupView(id string) (View, bool) {
	return f(id)
}

// NavigateFunc is the bound form of Engine.Navigate handed to a Trigger.
type NavigateFunc func(path string) error

// Trigger decides when navigation happens, for example by intercepting
// link activation, and calls the supplied NavigateFunc to do it.
type Trigger interface {
	Bind(NavigateFunc)
}

type TriggerFunc func(NavigateFunc)

func (f TriggerFunc) Bind(navigate NavigateFunc) {
	f(navigate)
}

// ViewSet is an in-memory ViewLookup for hosts without a document,
// and for tests. Views start out hidden.
type ViewSet struct {
	mu     sync.Mutex
	hidden map[string]bool
}

// NewViewSet creates a ViewSet holding the given view identifiers.
func NewViewSet(ids ...string) *ViewSet {
	s := &ViewSet{hidden: make(map[string]bool, len(ids))}
	for _, id := range ids {
		s.hidden[id] = true
	}
	return s
}

// Add registers a view. Adding an existing view is a no-op.
func (s *ViewSet) Add(id string) *ViewSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hidden[id]; !ok {
		s.hidden[id] = true
	}
	return s
}

func (s *ViewSet) LookupView(id string) (View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hidden[id]; !ok {
		return nil, false
	}
	return &setView{set: s, id: id}, true
}

// Visible reports whether the view is currently shown.
func (s *ViewSet) Visible(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	hidden, ok := s.hidden[id]
	return ok && !hidden
}

// VisibleViews returns the identifiers of all views currently shown.
func (s *ViewSet) VisibleViews() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for id, hidden := range s.hidden {
		if !hidden {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *ViewSet) setHidden(id string, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hidden[id] = v
}

type setView struct {
	set *ViewSet
	id  string
}

func (v *setView) ID() string {
	return v.id
}

func (v *setView) Show() {
	v.set.setHidden(v.id, false)
}

func (v *setView) Hide() {
	v.set.setHidden(v.id, true)
}
