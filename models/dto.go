package models

type AddCartItemRequest struct {
	ID            string  `json:"id" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	UnitPrice     float64 `json:"unit_price" binding:"required,gt=0"`
	Quantity      int     `json:"quantity" binding:"required,min=1"`
	ImageRef      string  `json:"image_ref"`
	SelectedSize  *string `json:"selected_size,omitempty"`
	SelectedColor *string `json:"selected_color,omitempty"`
}

type ChangeQuantityRequest struct {
	Direction string `json:"direction" binding:"required,oneof=increase decrease"`
}

type CheckoutRequest struct {
	Billing BillingDetails `json:"billing" binding:"required"`
}

// CreateOrderRequest is the order-store collaborator contract.
type CreateOrderRequest struct {
	Order      Order   `json:"order" binding:"required"`
	GrandTotal float64 `json:"grand_total"`
}

// SendInvoiceRequest is the mail-relay collaborator contract.
type SendInvoiceRequest struct {
	Email       string     `json:"email" binding:"required,email"`
	OrderID     int64      `json:"order_id" binding:"required"`
	Products    []CartItem `json:"products" binding:"required"`
	TotalAmount float64    `json:"total_amount"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
