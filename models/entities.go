package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses
const (
	OrderStatusPending        = "pending"
	OrderStatusPaymentPending = "payment_pending"
	OrderStatusPaid           = "paid"
	OrderStatusPaymentFailed  = "payment_failed"
	OrderStatusShipped        = "shipped"
	OrderStatusRefundPending  = "refund_pending"
	OrderStatusRefunded       = "refunded"
)

// Payment methods an order can be paid with
const (
	PaymentMethodPhonePe = "phonepe"
	PaymentMethodPayPal  = "paypal"
)

// DefaultAdminRole is given to admins created without a role
const DefaultAdminRole = "admin"

// User is a storefront customer
type User struct {
	ID        string    `json:"id"        bson:"_id"`
	Username  string    `json:"username"  bson:"username"`
	Password  string    `json:"-"         bson:"password"`
	Email     *string   `json:"email"     bson:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// Admin is a back office user
type Admin struct {
	ID        string    `json:"id"        bson:"_id"`
	Username  string    `json:"username"  bson:"username"`
	Password  string    `json:"-"         bson:"password"`
	Email     *string   `json:"email"     bson:"email,omitempty"`
	Role      string    `json:"role"      bson:"role"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// OrderItem is one product line on an order
type OrderItem struct {
	ProductID string          `json:"productId" validate:"required"`
	Name      string          `json:"name"      validate:"required"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"  validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
}

// Address is where an order is delivered
type Address struct {
	Name    string `json:"name"    validate:"required"`
	Phone   string `json:"phone"   validate:"required"`
	Email   string `json:"email"   validate:"omitempty,email"`
	Line1   string `json:"line1"   validate:"required"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"    validate:"required"`
	State   string `json:"state"   validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// Order is a customer purchase. TotalAmount is in rupees.
type Order struct {
	ID               string          `json:"id"`
	UserID           string          `json:"userId"`
	Items            []OrderItem     `json:"items"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	Status           string          `json:"status"`
	ShippingAddress  Address         `json:"shippingAddress"`
	PaymentMethod    string          `json:"paymentMethod"`
	PaymentReference string          `json:"paymentReference,omitempty"`
	RefundReference  string          `json:"refundReference,omitempty"`
	ShipmentID       int64           `json:"shipmentId,omitempty"`
	AWBCode          string          `json:"awbCode,omitempty"`
	ShipmentStep     string          `json:"shipmentStep,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// Wishlist is a product a user has saved
type Wishlist struct {
	ID        string    `json:"id"        bson:"_id"`
	UserID    string    `json:"userId"    bson:"user_id"`
	ProductID string    `json:"productId" bson:"product_id"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// ContactSubmission is a message sent through the contact form
type ContactSubmission struct {
	ID        string    `json:"id"        bson:"_id"`
	Name      string    `json:"name"      bson:"name"`
	Mobile    string    `json:"mobile"    bson:"mobile"`
	Email     string    `json:"email"     bson:"email"`
	Subject   string    `json:"subject"   bson:"subject"`
	Category  string    `json:"category"  bson:"category"`
	Message   *string   `json:"message"   bson:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
