package models

// CartItem is a single cart line. A line's quantity never drops below 1
// through a decrement; removing the line is a separate explicit action.
type CartItem struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	UnitPrice     float64 `json:"unit_price"`
	Quantity      int     `json:"quantity"`
	ImageRef      string  `json:"image_ref"`
	SelectedSize  *string `json:"selected_size,omitempty"`
	SelectedColor *string `json:"selected_color,omitempty"`
}

// SameVariant reports whether two lines refer to the same product variant.
func (i CartItem) SameVariant(other CartItem) bool {
	if i.ID != other.ID {
		return false
	}
	return equalOpt(i.SelectedSize, other.SelectedSize) && equalOpt(i.SelectedColor, other.SelectedColor)
}

func equalOpt(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
