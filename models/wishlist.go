package models

// WishlistItem is a saved product card. IDs are unique within a wishlist;
// adding a duplicate is a silent no-op.
type WishlistItem struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	ShortDescription   string  `json:"short_description"`
	Price              string  `json:"price"`
	OldPrice           *string `json:"old_price,omitempty"`
	DiscountPercentage *string `json:"discount_percentage,omitempty"`
	IsNew              bool    `json:"is_new,omitempty"`
	ImageRef           string  `json:"image_ref"`
}
