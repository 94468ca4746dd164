// Package cart holds the shopper's cart for one session.
package cart

import (
	"sync"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/ports"
	"github.com/shopspring/decimal"
)

// MaxQuantity caps a single cart line.
const MaxQuantity = 99

type Store struct {
	mu    sync.RWMutex
	items []domain.CartItem
}

func NewStore() *Store {
	return &Store{}
}

var _ ports.CartStore = (*Store)(nil)

// Add puts qty units of p in the cart, merging with an existing line.
// Quantities below one are ignored.
func (s *Store) Add(p domain.Product, qty int) {
	if qty < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity = clamp(s.items[i].Quantity + qty)
			return
		}
	}
	s.items = append(s.items, domain.CartItem{Product: p, Quantity: clamp(qty)})
}

func (s *Store) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of a line. Zero or less removes it.
func (s *Store) UpdateQuantity(productID, qty int) {
	if qty < 1 {
		s.Remove(productID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity = clamp(qty)
			return
		}
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CartItem(nil), s.items...)
}

func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func clamp(qty int) int {
	if qty > MaxQuantity {
		return MaxQuantity
	}
	return qty
}
