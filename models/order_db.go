package models

import "time"

// OrderDB is an order as stored in mongo. Money is held as a decimal string.
type OrderDB struct {
	ID               string        `bson:"_id"`
	UserID           string        `bson:"user_id"`
	Items            []OrderItemDB `bson:"items"`
	TotalAmount      string        `bson:"total_amount"`
	Status           string        `bson:"status"`
	ShippingAddress  AddressDB     `bson:"shipping_address"`
	PaymentMethod    string        `bson:"payment_method"`
	PaymentReference string        `bson:"payment_reference,omitempty"`
	RefundReference  string        `bson:"refund_reference,omitempty"`
	ShipmentID       int64         `bson:"shipment_id,omitempty"`
	AWBCode          string        `bson:"awb_code,omitempty"`
	ShipmentStep     string        `bson:"shipment_step,omitempty"`
	CreatedAt        time.Time     `bson:"created_at"`
}

// OrderItemDB is a stored order line
type OrderItemDB struct {
	ProductID string `bson:"product_id"`
	Name      string `bson:"name"`
	SKU       string `bson:"sku,omitempty"`
	Quantity  int    `bson:"quantity"`
	Price     string `bson:"price"`
}

// AddressDB is a stored delivery address
type AddressDB struct {
	Name    string `bson:"name"`
	Phone   string `bson:"phone"`
	Email   string `bson:"email,omitempty"`
	Line1   string `bson:"line1"`
	Line2   string `bson:"line2,omitempty"`
	City    string `bson:"city"`
	State   string `bson:"state"`
	Pincode string `bson:"pincode"`
	Country string `bson:"country"`
}
