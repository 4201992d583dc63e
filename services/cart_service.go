package services

import (
	"furniture-shop/models"
	"furniture-shop/repositories"
)

const (
	QuantityIncrease = "increase"
	QuantityDecrease = "decrease"
)

// CartService owns the cart slot and every mutation rule on it. Line items
// are addressed by positional index; indices shift on removal, so callers
// must re-derive them from the latest read rather than caching them.
type CartService struct {
	store *KeyedStore[[]models.CartItem]
}

func NewCartService(medium repositories.StorageMedium, key string) *CartService {
	return &CartService{
		store: NewKeyedStore(medium, key, []models.CartItem{}),
	}
}

func (s *CartService) Items() []models.CartItem {
	return s.store.Read()
}

// Snapshot returns an immutable copy of the current items, safe to hold
// across a multi-step operation like checkout.
func (s *CartService) Snapshot() []models.CartItem {
	items := s.store.Read()
	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)
	return snapshot
}

// AddItem appends a line, or bumps the quantity when the same variant is
// already in the cart.
func (s *CartService) AddItem(item models.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	s.store.Update(func(items []models.CartItem) []models.CartItem {
		next := make([]models.CartItem, len(items))
		copy(next, items)
		for i := range next {
			if next[i].SameVariant(item) {
				next[i].Quantity += item.Quantity
				return next
			}
		}
		return append(next, item)
	})
}

// ChangeQuantity adjusts one line by a single step. Decrementing a line at
// quantity 1 is a no-op, never an implicit removal. An out-of-bounds index is
// a no-op too; a concurrent removal may have shifted the list under the
// caller.
func (s *CartService) ChangeQuantity(index int, direction string) {
	s.store.Update(func(items []models.CartItem) []models.CartItem {
		if index < 0 || index >= len(items) {
			return items
		}
		next := make([]models.CartItem, len(items))
		copy(next, items)

		switch direction {
		case QuantityIncrease:
			next[index].Quantity++
		case QuantityDecrease:
			if next[index].Quantity > 1 {
				next[index].Quantity--
			}
		}
		return next
	})
}

func (s *CartService) RemoveItem(index int) {
	s.store.Update(func(items []models.CartItem) []models.CartItem {
		if index < 0 || index >= len(items) {
			return items
		}
		next := make([]models.CartItem, 0, len(items)-1)
		next = append(next, items[:index]...)
		next = append(next, items[index+1:]...)
		return next
	})
}

func (s *CartService) Clear() {
	s.store.Write([]models.CartItem{})
}

// Subtotal is recomputed from the items on every call so it can never drift
// from the underlying sequence.
func (s *CartService) Subtotal() float64 {
	var total float64
	for _, item := range s.store.Read() {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

func (s *CartService) Subscribe(listener func([]models.CartItem)) {
	s.store.Subscribe(listener)
}
