package store

import (
	"sync"

	"github.com/lvdark77/Online-Store/models"
)

// CartStore holds the session's in-progress cart. It is never persisted: the
// cart belongs to the session, not to the logged-in user, so it survives
// logout but cannot leak to another identity.
type CartStore struct {
	mu    sync.Mutex
	items []models.CartItem
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// Add puts a product into the cart. A repeat add of the same id increments
// the existing line's quantity.
func (s *CartStore) Add(item models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	s.items = append(s.items, item)
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
// Unknown ids are a no-op.
func (s *CartStore) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.remove(id)
		return
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes a line; unknown ids are a no-op.
func (s *CartStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(id)
}

func (s *CartStore) remove(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// TakeAll removes and returns every line in one step. Checkout commits
// through this so the order's items, its total and the emptied cart all
// reflect the same cart state even with concurrent edits on the session.
func (s *CartStore) TakeAll() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.items
	s.items = nil
	return items
}

// Items returns a copy of the cart lines in insertion order.
func (s *CartStore) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of all line quantities.
func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the exact sum of price times quantity over all lines.
func (s *CartStore) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, it := range s.items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}
