// Package selection carries the chosen category/subcategory pair between the
// browsing views and the ad form.
package selection

import "sync"

const (
	DefaultCategory    = "Properties"
	DefaultSubcategory = "For Sale: Houses & Apartments"
)

// View names the screen a selection was made from.
type View string

const (
	ViewHome    View = "home"
	ViewListing View = "listing"
	ViewDetail  View = "detail"
)

// Selection is a category/subcategory pair. It is not checked against the
// taxonomy; unknown pairs simply have no badge.
type Selection struct {
	Category    string
	Subcategory string
}

// Select builds a Selection.
func Select(category, subcategory string) Selection {
	return Selection{Category: category, Subcategory: subcategory}
}

// Store holds at most one Selection plus the view it came from.
type Store struct {
	mu      sync.RWMutex
	current *Selection
	origin  View
}

func NewStore() *Store {
	return &Store{origin: ViewHome}
}

// Select replaces the current selection and keeps the origin view.
func (s *Store) Select(category, subcategory string) Selection {
	sel := Select(category, subcategory)
	s.mu.Lock()
	s.current = &sel
	s.mu.Unlock()
	return sel
}

// SelectFrom replaces the current selection and records where it was made.
func (s *Store) SelectFrom(origin View, category, subcategory string) Selection {
	sel := Select(category, subcategory)
	s.mu.Lock()
	s.current = &sel
	s.origin = origin
	s.mu.Unlock()
	return sel
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *Store) Current() (Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Selection{}, false
	}
	return *s.current, true
}

func (s *Store) Origin() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.origin
}

// OrDefault returns the current selection, or Properties / For Sale when none
// has been made.
func (s *Store) OrDefault() Selection {
	if sel, ok := s.Current(); ok {
		return sel
	}
	return Select(DefaultCategory, DefaultSubcategory)
}
