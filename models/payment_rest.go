package models

import "github.com/shopspring/decimal"

// IncomingPaymentRequest is the body of a request to pay for an order
type IncomingPaymentRequest struct {
	OrderID      string `json:"orderId"                validate:"required"`
	RedirectURL  string `json:"redirectUrl"            validate:"required,url"`
	MobileNumber string `json:"mobileNumber,omitempty" validate:"omitempty,numeric,len=10"`
}

// PaymentSessionResponse tells the storefront where to send the customer
type PaymentSessionResponse struct {
	OrderID         string       `json:"orderId"`
	MerchantOrderID string       `json:"merchantOrderId"`
	RedirectURL     string       `json:"redirectUrl"`
	State           PaymentState `json:"state"`
}

// PaymentStatusResponse is the status of an order's payment
type PaymentStatusResponse struct {
	OrderID     string       `json:"orderId"`
	Reference   string       `json:"reference"`
	Code        string       `json:"code"`
	State       PaymentState `json:"state"`
	OrderStatus string       `json:"orderStatus"`
}

// IncomingRefundRequest is the body of an admin refund. Amount is in paise.
type IncomingRefundRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// RefundResponse is the outcome of a refund request or status check
type RefundResponse struct {
	OrderID          string       `json:"orderId"`
	MerchantRefundID string       `json:"merchantRefundId"`
	Amount           int64        `json:"amount"`
	Code             string       `json:"code,omitempty"`
	State            PaymentState `json:"state"`
	OrderStatus      string       `json:"orderStatus"`
}

// IncomingOrderRequest is the body of a request to place an order
type IncomingOrderRequest struct {
	UserID          string          `json:"userId"          validate:"required"`
	Items           []OrderItem     `json:"items"           validate:"required,min=1,dive"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	ShippingAddress Address         `json:"shippingAddress" validate:"required"`
	PaymentMethod   string          `json:"paymentMethod"   validate:"omitempty,oneof=phonepe paypal"`
}

// IncomingUserRequest is the body of a sign up request
type IncomingUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=64"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Email    *string `json:"email"    validate:"omitempty,email"`
}

// IncomingAdminRequest is the body of a request to create a back office user
type IncomingAdminRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=64"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Role     string  `json:"role"`
}

// IncomingWishlistRequest saves a product to a user's wishlist
type IncomingWishlistRequest struct {
	UserID    string `json:"userId"    validate:"required"`
	ProductID string `json:"productId" validate:"required"`
}

// IncomingContactRequest is a contact form submission
type IncomingContactRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Mobile   string  `json:"mobile"   validate:"required,numeric,min=10,max=15"`
	Email    string  `json:"email"    validate:"required,email"`
	Subject  string  `json:"subject"  validate:"required"`
	Category string  `json:"category" validate:"required"`
	Message  *string `json:"message"`
}

// IncomingShipmentRequest carries the parcel details needed to ship an order.
// Dimensions are in cm and weight in kg. A zero CourierID lets the aggregator
// choose.
type IncomingShipmentRequest struct {
	Length    float64 `json:"length"    validate:"required,gt=0"`
	Breadth   float64 `json:"breadth"   validate:"required,gt=0"`
	Height    float64 `json:"height"    validate:"required,gt=0"`
	Weight    float64 `json:"weight"    validate:"required,gt=0"`
	CourierID int64   `json:"courierId" validate:"omitempty,gt=0"`
}

// IncomingLoginRequest is the body of a back office sign in
type IncomingLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
