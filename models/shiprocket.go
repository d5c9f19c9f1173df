package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// VendorID is a numeric Shiprocket id that is sent as an empty string until
// it has been assigned.
type VendorID int64

// UnmarshalJSON accepts a number, a numeric string or an empty string
func (id *VendorID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*id = 0
			return nil
		}
		b = []byte(s)
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*id = VendorID(n)
	return nil
}

// ShipmentOrderItem is a line item on a Shiprocket adhoc order
type ShipmentOrderItem struct {
	Name         string  `json:"name"          validate:"required"`
	SKU          string  `json:"sku"           validate:"required"`
	Units        int     `json:"units"         validate:"required,gt=0"`
	SellingPrice float64 `json:"selling_price" validate:"gte=0"`
	Discount     float64 `json:"discount"`
	Tax          float64 `json:"tax"`
	HSN          int     `json:"hsn"`
}

// ShipmentOrderRequest is the body of /orders/create/adhoc
type ShipmentOrderRequest struct {
	OrderID             string              `json:"order_id"              validate:"required"`
	OrderDate           string              `json:"order_date"            validate:"required"`
	PickupLocation      string              `json:"pickup_location"       validate:"required"`
	BillingCustomerName string              `json:"billing_customer_name" validate:"required"`
	BillingLastName     string              `json:"billing_last_name"`
	BillingAddress      string              `json:"billing_address"       validate:"required"`
	BillingCity         string              `json:"billing_city"          validate:"required"`
	BillingPincode      string              `json:"billing_pincode"       validate:"required,numeric,len=6"`
	BillingState        string              `json:"billing_state"         validate:"required"`
	BillingCountry      string              `json:"billing_country"       validate:"required"`
	BillingEmail        string              `json:"billing_email"         validate:"omitempty,email"`
	BillingPhone        string              `json:"billing_phone"         validate:"required"`
	ShippingIsBilling   bool                `json:"shipping_is_billing"`
	OrderItems          []ShipmentOrderItem `json:"order_items"           validate:"required,min=1,dive"`
	PaymentMethod       string              `json:"payment_method"        validate:"required,oneof=Prepaid COD"`
	SubTotal            float64             `json:"sub_total"             validate:"gt=0"`
	Length              float64             `json:"length"                validate:"gt=0"`
	Breadth             float64             `json:"breadth"               validate:"gt=0"`
	Height              float64             `json:"height"                validate:"gt=0"`
	Weight              float64             `json:"weight"                validate:"gt=0"`
}

// ShipmentOrder is the response from /orders/create/adhoc
type ShipmentOrder struct {
	OrderID                int64    `json:"order_id"`
	ShipmentID             int64    `json:"shipment_id"`
	Status                 string   `json:"status"`
	StatusCode             int      `json:"status_code"`
	OnboardingCompletedNow int      `json:"onboarding_completed_now"`
	AWBCode                string   `json:"awb_code,omitempty"`
	CourierCompanyID       VendorID `json:"courier_company_id,omitempty"`
	CourierName            string   `json:"courier_name,omitempty"`
}

// ShiprocketLoginRequest is the body of /auth/login
type ShiprocketLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ShiprocketLoginResponse is the response from /auth/login
type ShiprocketLoginResponse struct {
	Token string `json:"token"`
}

// ShiprocketErrorResponse is the error body Shiprocket returns on a non-2xx
type ShiprocketErrorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// IncomingServiceabilityResponse is the response from /courier/serviceability/
type IncomingServiceabilityResponse struct {
	Status int `json:"status"`
	Data   struct {
		AvailableCourierCompanies []IncomingCourierCompany `json:"available_courier_companies"`
	} `json:"data"`
}

// IncomingCourierCompany is a single courier quote
type IncomingCourierCompany struct {
	CourierCompanyID      int64   `json:"courier_company_id"`
	CourierName           string  `json:"courier_name"`
	FreightCharge         float64 `json:"freight_charge"`
	CODCharge             float64 `json:"cod_charge"`
	TotalCharge           float64 `json:"total_charge"`
	EstimatedDeliveryDays string  `json:"estimated_delivery_days"`
	IsSurface             bool    `json:"is_surface"`
}

// CourierOption is a courier able to serve a pickup and delivery pincode pair
type CourierOption struct {
	CourierID     int64   `json:"courierId"`
	Name          string  `json:"name"`
	FreightCharge float64 `json:"freightCharge"`
	CODCharge     float64 `json:"codCharge"`
	TotalCharge   float64 `json:"totalCharge"`
	EstimatedDays string  `json:"estimatedDays"`
	IsSurface     bool    `json:"isSurface"`
}

// OutgoingAWBRequest is the body of /courier/assign/awb. A zero CourierID
// lets Shiprocket choose.
type OutgoingAWBRequest struct {
	ShipmentID int64 `json:"shipment_id"`
	CourierID  int64 `json:"courier_id,omitempty"`
}

// AWBAssignment is the response from /courier/assign/awb
type AWBAssignment struct {
	AWBAssignStatus int `json:"awb_assign_status"`
	Response        struct {
		Data AWBData `json:"data"`
	} `json:"response"`
}

// AWBData identifies the courier and tracking code assigned to a shipment
type AWBData struct {
	CourierCompanyID int64  `json:"courier_company_id"`
	AWBCode          string `json:"awb_code"`
	CourierName      string `json:"courier_name"`
	ShipmentID       int64  `json:"shipment_id"`
}

// OutgoingShipmentIDs is the body of the pickup and label endpoints
type OutgoingShipmentIDs struct {
	ShipmentID []int64 `json:"shipment_id"`
}

// PickupResponse is the response from /courier/generate/pickup
type PickupResponse struct {
	PickupStatus int `json:"pickup_status"`
	Response     struct {
		PickupScheduledDate string `json:"pickup_scheduled_date"`
		PickupTokenNumber   string `json:"pickup_token_number"`
		Status              int    `json:"status"`
	} `json:"response"`
}

// Label is the response from /courier/generate/label
type Label struct {
	LabelCreated int     `json:"label_created"`
	LabelURL     string  `json:"label_url"`
	NotCreated   []int64 `json:"not_created,omitempty"`
}

// TrackingResponse is the response from /courier/track/awb/{awb}
type TrackingResponse struct {
	TrackingData TrackingData `json:"tracking_data"`
}

// TrackingData is the current tracking state of a shipment
type TrackingData struct {
	TrackStatus             int                `json:"track_status"`
	ShipmentStatus          int                `json:"shipment_status"`
	ShipmentTrackActivities []TrackingActivity `json:"shipment_track_activities"`
	TrackURL                string             `json:"track_url"`
	ETD                     string             `json:"etd"`
	Error                   string             `json:"error,omitempty"`
}

// TrackingActivity is a single scan event
type TrackingActivity struct {
	Date     string `json:"date"`
	Status   string `json:"status"`
	Activity string `json:"activity"`
	Location string `json:"location"`
}

// ShipmentResult reports how far the create, AWB, pickup and label sequence
// got. Steps after a failure are not attempted and nothing is rolled back.
type ShipmentResult struct {
	OrderID    string   `json:"orderId"`
	ShipmentID int64    `json:"shipmentId,omitempty"`
	AWBCode    string   `json:"awbCode,omitempty"`
	CourierID  int64    `json:"courierId,omitempty"`
	LabelURL   string   `json:"labelUrl,omitempty"`
	Completed  []string `json:"completed"`
	FailedStep string   `json:"failedStep,omitempty"`
	Error      string   `json:"error,omitempty"`
}
