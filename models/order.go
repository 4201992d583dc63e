package models

import "time"

const (
	OrderStatusPending = "pending"

	CourierStandard       = "standard"
	PaymentCashOnDelivery = "cash_on_delivery"

	AddressTypeHome   = "home"
	AddressTypeOffice = "office"
)

// Provinces accepted by the billing form.
var Provinces = []string{
	"Dhaka",
	"Chattogram",
	"Rajshahi",
	"Khulna",
	"Barishal",
	"Sylhet",
	"Rangpur",
	"Mymensingh",
}

// BillingDetails is collected fresh on every checkout attempt and never
// persisted beyond the in-flight request.
type BillingDetails struct {
	FullName      string `json:"full_name" binding:"required,min=3"`
	AddressLine1  string `json:"address_line1" binding:"required"`
	AddressLine2  string `json:"address_line2"`
	City          string `json:"city" binding:"required"`
	Province      string `json:"province" binding:"required,province"`
	ZipCode       string `json:"zip_code" binding:"required,zipcode"`
	Phone         string `json:"phone" binding:"required,phone11"`
	AltPhone      string `json:"alt_phone" binding:"omitempty,phone11"`
	Email         string `json:"email" binding:"required,email"`
	Courier       string `json:"courier" binding:"required,oneof=standard"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=cash_on_delivery"`
	Landmark      string `json:"landmark"`
	AddressType   string `json:"address_type" binding:"required,oneof=home office"`
}

// Order is built by the checkout pipeline from a cart snapshot. The ID is
// client-generated from the submission timestamp; the order store keeps its
// own serial key alongside it.
type Order struct {
	ID          int64          `json:"id"`
	Status      string         `json:"status"`
	Items       []CartItem     `json:"items"`
	CreatedAt   time.Time      `json:"created_at"`
	Billing     BillingDetails `json:"billing"`
	OwnerID     string         `json:"owner_id"`
	TotalAmount float64        `json:"total_amount"`
}

// OrderRecord is the durable row written by the order-store endpoint.
type OrderRecord struct {
	ID            int64          `json:"record_id"`
	ClientOrderID int64          `json:"id"`
	OwnerID       string         `json:"owner_id"`
	Status        string         `json:"status"`
	TotalAmount   float64        `json:"total_amount"`
	GrandTotal    float64        `json:"grand_total"`
	Items         []CartItem     `json:"items"`
	Billing       BillingDetails `json:"billing"`
	CreatedAt     time.Time      `json:"created_at"`
}
