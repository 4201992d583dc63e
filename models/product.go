package models

// Product mirrors the catalog document shape served by the headless CMS.
// The core only consumes id, title, price and the image reference.
type Product struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	ShortDescription   string   `json:"short_description"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	OldPrice           *float64 `json:"old_price,omitempty"`
	DiscountPercentage *string  `json:"discount_percentage,omitempty"`
	IsNew              bool     `json:"is_new"`
	Category           string   `json:"category"`
	Tags               []string `json:"tags"`
	Sizes              []string `json:"sizes,omitempty"`
	Colors             []string `json:"colors,omitempty"`
	ImageRef           string   `json:"image_ref"`
}
