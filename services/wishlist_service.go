package services

import (
	"furniture-shop/models"
	"furniture-shop/repositories"
)

// WishlistService owns the wishlist slot: a set-like sequence keyed by item
// id, in insertion order.
type WishlistService struct {
	store *KeyedStore[[]models.WishlistItem]
}

func NewWishlistService(medium repositories.StorageMedium, key string) *WishlistService {
	return &WishlistService{
		store: NewKeyedStore(medium, key, []models.WishlistItem{}),
	}
}

func (s *WishlistService) Items() []models.WishlistItem {
	return s.store.Read()
}

// Add appends the item unless its id is already present; a duplicate add
// leaves the collection untouched, including its order.
func (s *WishlistService) Add(item models.WishlistItem) {
	s.store.Update(func(items []models.WishlistItem) []models.WishlistItem {
		for _, existing := range items {
			if existing.ID == item.ID {
				return items
			}
		}
		next := make([]models.WishlistItem, len(items), len(items)+1)
		copy(next, items)
		return append(next, item)
	})
}

// Remove filters out the matching id and persists unconditionally; removing
// an absent id is a harmless no-op.
func (s *WishlistService) Remove(id string) {
	s.store.Update(func(items []models.WishlistItem) []models.WishlistItem {
		next := make([]models.WishlistItem, 0, len(items))
		for _, item := range items {
			if item.ID != id {
				next = append(next, item)
			}
		}
		return next
	})
}

// Count tracks the sequence length synchronously with Add and Remove, so
// badge counters never lag within the same process.
func (s *WishlistService) Count() int {
	return len(s.store.Read())
}

func (s *WishlistService) Subscribe(listener func([]models.WishlistItem)) {
	s.store.Subscribe(listener)
}
