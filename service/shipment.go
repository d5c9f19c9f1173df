package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/kanchiweaves/storefront.api/config"
	"github.com/kanchiweaves/storefront.api/dao"
	"github.com/kanchiweaves/storefront.api/models"
)

// Shipment steps, in the order they are attempted
const (
	StepCreate = "create"
	StepAWB    = "awb"
	StepPickup = "pickup"
	StepLabel  = "label"
)

var shipmentSteps = []string{StepCreate, StepAWB, StepPickup, StepLabel}

const shiprocketDateFormat = "2006-01-02 15:04"

// ShippingClient is the set of aggregator calls the shipment service makes.
// It is satisfied by *shiprocket.Client.
type ShippingClient interface {
	GetCourierServiceability(ctx context.Context, pickup, delivery string, weight float64, cod bool) ([]models.CourierOption, error)
	CreateOrder(ctx context.Context, req models.ShipmentOrderRequest) (*models.ShipmentOrder, error)
	AssignAWB(ctx context.Context, shipmentID int64, courierID int64) (*models.AWBAssignment, error)
	SchedulePickup(ctx context.Context, shipmentID int64) (*models.PickupResponse, error)
	GenerateLabel(ctx context.Context, shipmentIDs []int64) (*models.Label, error)
	TrackShipment(ctx context.Context, awbCode string) (*models.TrackingResponse, error)
}

// ShipmentService ships paid orders through the shipping aggregator
type ShipmentService struct {
	DAO    dao.DAO
	Client ShippingClient
	Config config.Config
}

// GetServiceability lists the couriers that can deliver a parcel of weight kg
// from pickup to delivery. An empty pickup uses the configured pickup pincode.
func (s *ShipmentService) GetServiceability(ctx context.Context, pickup, delivery string, weight float64, cod bool) ([]models.CourierOption, ResponseType, error) {
	if delivery == "" || weight <= 0 {
		return nil, InvalidData, fmt.Errorf("delivery pincode and a positive weight are required")
	}
	if pickup == "" {
		pickup = s.Config.ShiprocketPickupPincode
	}
	if pickup == "" {
		return nil, Error, fmt.Errorf("pickup pincode is not configured")
	}

	options, err := s.Client.GetCourierServiceability(ctx, pickup, delivery, weight, cod)
	if err != nil {
		return nil, GatewayError, fmt.Errorf("error checking courier serviceability: [%w]", err)
	}
	return options, Success, nil
}

// TrackShipment returns the tracking history of an air waybill
func (s *ShipmentService) TrackShipment(ctx context.Context, awbCode string) (*models.TrackingResponse, ResponseType, error) {
	if awbCode == "" {
		return nil, InvalidData, fmt.Errorf("awb code is required")
	}

	tracking, err := s.Client.TrackShipment(ctx, awbCode)
	if err != nil {
		return nil, GatewayError, fmt.Errorf("error tracking shipment [%s]: [%w]", awbCode, err)
	}
	return tracking, Success, nil
}

// ShipOrder creates a shipment for a paid order, then assigns an AWB,
// schedules the pickup and generates the label. Each step is a separate call
// and stops the sequence when it fails. Completed steps are kept on the order
// and reported in the result, and calling ShipOrder again on a partially
// shipped order carries on from the first step not yet done.
func (s *ShipmentService) ShipOrder(ctx context.Context, orderID string, req models.IncomingShipmentRequest) (*models.ShipmentResult, ResponseType, error) {
	if err := validate.Struct(req); err != nil {
		return nil, InvalidData, fmt.Errorf("invalid shipment request: [%w]", err)
	}

	order, err := s.DAO.GetOrder(orderID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting order [%s]: [%w]", orderID, err)
	}
	if order == nil {
		return nil, NotFound, fmt.Errorf("order [%s] not found", orderID)
	}

	done := completedSteps(order)
	switch {
	case order.Status == models.OrderStatusPaid && len(done) == 0:
	case order.Status == models.OrderStatusShipped && len(done) < len(shipmentSteps):
		log.Info("resuming shipment", log.Data{"order_id": order.ID, "shipment_id": order.ShipmentID, "completed": done})
	case order.Status == models.OrderStatusShipped:
		return nil, Conflict, fmt.Errorf("order [%s] has already been shipped", orderID)
	default:
		return nil, Conflict, fmt.Errorf("order [%s] is [%s], only paid orders can be shipped", orderID, order.Status)
	}

	result := &models.ShipmentResult{OrderID: order.ID, ShipmentID: order.ShipmentID, AWBCode: order.AWBCode, Completed: done}
	fail := func(step string, err error) (*models.ShipmentResult, ResponseType, error) {
		result.FailedStep = step
		result.Error = err.Error()
		log.Error(fmt.Errorf("error shipping order: [%w]", err), log.Data{"order_id": order.ID, "step": step, "completed": result.Completed})
		return result, GatewayError, fmt.Errorf("shipment step [%s] failed for order [%s]: [%w]", step, order.ID, err)
	}
	record := func(step string) error {
		order.ShipmentStep = step
		if err := s.DAO.UpdateOrder(order); err != nil {
			return fmt.Errorf("error recording shipment step [%s] on order [%s]: [%w]", step, order.ID, err)
		}
		result.Completed = append(result.Completed, step)
		return nil
	}

	if !slices.Contains(done, StepCreate) {
		created, err := s.Client.CreateOrder(ctx, s.shipmentOrderRequest(order, req))
		if err != nil {
			return fail(StepCreate, err)
		}
		result.ShipmentID = created.ShipmentID
		order.ShipmentID = created.ShipmentID
		order.Status = models.OrderStatusShipped
		if err := record(StepCreate); err != nil {
			return result, Error, err
		}
	}

	if !slices.Contains(done, StepAWB) {
		awb, err := s.Client.AssignAWB(ctx, order.ShipmentID, req.CourierID)
		if err != nil {
			return fail(StepAWB, err)
		}
		result.AWBCode = awb.Response.Data.AWBCode
		result.CourierID = awb.Response.Data.CourierCompanyID
		order.AWBCode = result.AWBCode
		if err := record(StepAWB); err != nil {
			return result, Error, err
		}
	}

	if !slices.Contains(done, StepPickup) {
		if _, err := s.Client.SchedulePickup(ctx, order.ShipmentID); err != nil {
			return fail(StepPickup, err)
		}
		if err := record(StepPickup); err != nil {
			return result, Error, err
		}
	}

	label, err := s.Client.GenerateLabel(ctx, []int64{order.ShipmentID})
	if err != nil {
		return fail(StepLabel, err)
	}
	result.LabelURL = label.LabelURL
	if err := record(StepLabel); err != nil {
		return result, Error, err
	}

	log.Info("order shipped", log.Data{"order_id": order.ID, "shipment_id": result.ShipmentID, "awb_code": result.AWBCode})

	return result, Success, nil
}

// completedSteps lists the shipment steps an order has recorded as done.
// Orders saved before steps were recorded fall back to the shipment id and
// AWB code.
func completedSteps(order *models.Order) []string {
	last := order.ShipmentStep
	if last == "" {
		switch {
		case order.AWBCode != "":
			last = StepAWB
		case order.ShipmentID != 0:
			last = StepCreate
		}
	}

	for i, step := range shipmentSteps {
		if step == last {
			return append([]string{}, shipmentSteps[:i+1]...)
		}
	}
	return []string{}
}

func (s *ShipmentService) shipmentOrderRequest(order *models.Order, req models.IncomingShipmentRequest) models.ShipmentOrderRequest {
	address := order.ShippingAddress
	firstName, lastName := splitName(address.Name)

	items := make([]models.ShipmentOrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		sku := item.SKU
		if sku == "" {
			sku = item.ProductID
		}
		price, _ := item.Price.Float64()
		items = append(items, models.ShipmentOrderItem{
			Name:         item.Name,
			SKU:          sku,
			Units:        item.Quantity,
			SellingPrice: price,
		})
	}

	subTotal, _ := order.TotalAmount.Float64()
	billingAddress := address.Line1
	if address.Line2 != "" {
		billingAddress += ", " + address.Line2
	}

	return models.ShipmentOrderRequest{
		OrderID:             order.ID,
		OrderDate:           order.CreatedAt.Format(shiprocketDateFormat),
		PickupLocation:      s.Config.ShiprocketPickupLocation,
		BillingCustomerName: firstName,
		BillingLastName:     lastName,
		BillingAddress:      billingAddress,
		BillingCity:         address.City,
		BillingPincode:      address.Pincode,
		BillingState:        address.State,
		BillingCountry:      address.Country,
		BillingEmail:        address.Email,
		BillingPhone:        address.Phone,
		ShippingIsBilling:   true,
		OrderItems:          items,
		PaymentMethod:       "Prepaid",
		SubTotal:            subTotal,
		Length:              req.Length,
		Breadth:             req.Breadth,
		Height:              req.Height,
		Weight:              req.Weight,
	}
}

func splitName(name string) (string, string) {
	first, last, _ := strings.Cut(strings.TrimSpace(name), " ")
	return first, strings.TrimSpace(last)
}
