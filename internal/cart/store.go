package cart

import (
	"sync"

	"alanya-store/internal/catalog"
)

// Line is a catalog item plus the quantity currently queued for purchase.
type Line struct {
	Item     catalog.Item `json:"item"`
	Quantity int          `json:"quantity"`
}

// Store holds the items of one browsing session's cart. Lines are unique by
// item name; adding an existing name merges into that line's quantity.
// Contents live in memory only and do not survive a restart.
type Store struct {
	mu    sync.RWMutex
	lines []Line
}

func NewStore() *Store {
	return &Store{}
}

// AddItem increments the quantity of the line with the same name, or appends
// a new line with quantity 1. Insertion order of distinct names is preserved.
func (s *Store) AddItem(item catalog.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Item.Name == item.Name {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, Line{Item: item, Quantity: 1})
}

// RemoveItem deletes the line with the given name. Absent names are a no-op.
func (s *Store) RemoveItem(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(name)
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less removes
// the line, same as RemoveItem. No upper bound is enforced.
func (s *Store) UpdateQuantity(name string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(name)
		return
	}
	for i := range s.lines {
		if s.lines[i].Item.Name == name {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a copy of the current cart lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// TotalItems is the sum of all line quantities, recomputed on every call.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums parsed line prices times quantities.
func (s *Store) TotalPrice() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, line := range s.lines {
		total += catalog.ParsePrice(line.Item.Price) * line.Quantity
	}
	return total
}

func (s *Store) removeLocked(name string) {
	for i := range s.lines {
		if s.lines[i].Item.Name == name {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}
