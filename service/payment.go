package service

import (
	"context"
	"fmt"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/kanchiweaves/storefront.api/config"
	"github.com/kanchiweaves/storefront.api/dao"
	"github.com/kanchiweaves/storefront.api/mappers"
	"github.com/kanchiweaves/storefront.api/models"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// PaymentService contains the DAO for db access and the payment providers
// orders are paid through
type PaymentService struct {
	DAO       dao.DAO
	Config    config.Config
	Providers PaymentProviders
	Callbacks CallbackDecoder

	now func() time.Time
}

// NewPaymentService returns a PaymentService using the wall clock
func NewPaymentService(store dao.DAO, cfg config.Config, providers PaymentProviders, callbacks CallbackDecoder) *PaymentService {
	return &PaymentService{
		DAO:       store,
		Config:    cfg,
		Providers: providers,
		Callbacks: callbacks,
		now:       time.Now,
	}
}

// CreateOrder places a new order in the pending status
func (service *PaymentService) CreateOrder(req models.IncomingOrderRequest) (*models.Order, ResponseType, error) {
	if err := validate.Struct(req); err != nil {
		return nil, InvalidData, fmt.Errorf("invalid order request: [%w]", err)
	}
	if !req.TotalAmount.IsPositive() {
		return nil, InvalidData, fmt.Errorf("order total must be positive, got [%s]", req.TotalAmount)
	}
	if req.TotalAmount.Exponent() < -2 {
		return nil, InvalidData, fmt.Errorf("order total [%s] has more than two decimal places", req.TotalAmount)
	}
	itemsTotal, err := sumItems(req.Items)
	if err != nil {
		return nil, InvalidData, err
	}
	if !itemsTotal.Equal(req.TotalAmount) {
		return nil, InvalidData, fmt.Errorf("order total [%s] does not match items total [%s]", req.TotalAmount, itemsTotal)
	}

	order := &models.Order{
		UserID:          req.UserID,
		Items:           req.Items,
		TotalAmount:     req.TotalAmount,
		Status:          models.OrderStatusPending,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	}
	if err := service.DAO.CreateOrder(order); err != nil {
		return nil, Error, fmt.Errorf("error creating order: [%w]", err)
	}

	log.Info("order created", log.Data{"order_id": order.ID, "user_id": order.UserID, "payment_method": order.PaymentMethod})

	return order, Success, nil
}

// sumItems adds up price times quantity over an order's lines
func sumItems(items []models.OrderItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		if !item.Price.IsPositive() {
			return decimal.Zero, fmt.Errorf("price of product [%s] must be positive, got [%s]", item.ProductID, item.Price)
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}

// GetOrder gets an order by id
func (service *PaymentService) GetOrder(id string) (*models.Order, ResponseType, error) {
	order, err := service.DAO.GetOrder(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting order [%s]: [%w]", id, err)
	}
	if order == nil {
		return nil, NotFound, fmt.Errorf("order [%s] not found", id)
	}
	return order, Success, nil
}

// GetUserOrders lists a user's orders, newest first
func (service *PaymentService) GetUserOrders(userID string) ([]models.Order, ResponseType, error) {
	orders, err := service.DAO.GetOrdersByUserID(userID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting orders for user [%s]: [%w]", userID, err)
	}
	return orders, Success, nil
}

// GetAllOrders lists every order, newest first
func (service *PaymentService) GetAllOrders() ([]models.Order, ResponseType, error) {
	orders, err := service.DAO.GetAllOrders()
	if err != nil {
		return nil, Error, fmt.Errorf("error getting orders: [%w]", err)
	}
	return orders, Success, nil
}

// DeleteOrder removes an order that has no payment in flight
func (service *PaymentService) DeleteOrder(id string) (ResponseType, error) {
	order, responseType, err := service.GetOrder(id)
	if err != nil {
		return responseType, err
	}
	if order.Status == models.OrderStatusPaymentPending || order.Status == models.OrderStatusRefundPending {
		return Conflict, fmt.Errorf("order [%s] is [%s] and cannot be deleted", id, order.Status)
	}
	if err := service.DAO.DeleteOrder(id); err != nil {
		return Error, fmt.Errorf("error deleting order [%s]: [%w]", id, err)
	}
	log.Info("order deleted", log.Data{"order_id": id})
	return Success, nil
}

// InitiatePayment starts a payment for an order with the provider for its
// payment method. Every attempt uses a new merchant order id. An order with
// an earlier attempt is only paid for again once the gateway reports that
// attempt as failed.
func (service *PaymentService) InitiatePayment(ctx context.Context, req models.IncomingPaymentRequest) (*models.PaymentSessionResponse, ResponseType, error) {
	if err := validate.Struct(req); err != nil {
		return nil, InvalidData, fmt.Errorf("invalid payment request: [%w]", err)
	}

	order, responseType, err := service.GetOrder(req.OrderID)
	if err != nil {
		return nil, responseType, err
	}

	if !payable(order.Status) {
		return nil, Conflict, fmt.Errorf("order [%s] is [%s] and cannot be paid for", order.ID, order.Status)
	}

	provider, err := service.Providers.For(order.PaymentMethod)
	if err != nil {
		return nil, Error, err
	}

	if order.Status == models.OrderStatusPaymentPending && order.PaymentReference != "" {
		status, _, responseType, err := service.SyncPayment(ctx, order)
		if err != nil {
			return nil, responseType, err
		}
		if order.Status == models.OrderStatusPaymentPending {
			return nil, Conflict, fmt.Errorf("payment [%s] for order [%s] is still [%s]", order.PaymentReference, order.ID, status.Code)
		}
		if !payable(order.Status) {
			return nil, Conflict, fmt.Errorf("order [%s] is [%s] and cannot be paid for", order.ID, order.Status)
		}
	}

	paymentRequest := models.PaymentRequest{
		MerchantOrderID: NewMerchantOrderID(service.now()),
		Amount:          mappers.ToPaise(order.TotalAmount),
		RedirectURL:     req.RedirectURL,
		MobileNumber:    req.MobileNumber,
	}
	if service.Config.HostURL != "" {
		paymentRequest.CallbackURL = service.Config.HostURL + "/api/payment/callback"
	}

	session, err := provider.InitiatePayment(ctx, order, paymentRequest)
	if err != nil {
		return nil, providerResponseType(err), fmt.Errorf("error initiating payment for order [%s]: [%w]", order.ID, err)
	}

	order.PaymentReference = session.Reference
	order.Status = models.OrderStatusPaymentPending
	if err := service.DAO.UpdateOrder(order); err != nil {
		return nil, Error, fmt.Errorf("error recording payment [%s] on order [%s]: [%w]", session.Reference, order.ID, err)
	}

	log.Info("payment initiated", log.Data{"order_id": order.ID, "merchant_order_id": session.MerchantOrderID, "amount": session.Amount})

	response := mappers.MapToPaymentSessionResponse(*order, *session)
	return &response, Success, nil
}

func payable(status string) bool {
	switch status {
	case models.OrderStatusPending, models.OrderStatusPaymentPending, models.OrderStatusPaymentFailed:
		return true
	}
	return false
}

// CheckPaymentStatus asks the gateway for the state of a payment and settles
// its order when the state is terminal
func (service *PaymentService) CheckPaymentStatus(ctx context.Context, reference string) (*models.PaymentStatusResponse, ResponseType, error) {
	order, err := service.DAO.GetOrderByPaymentReference(reference)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting order for payment [%s]: [%w]", reference, err)
	}
	if order == nil {
		return nil, NotFound, fmt.Errorf("no order found for payment [%s]", reference)
	}

	status, _, responseType, err := service.SyncPayment(ctx, order)
	if err != nil {
		return nil, responseType, err
	}

	response := mappers.MapToPaymentStatusResponse(*order, *status)
	return &response, Success, nil
}

// SyncPayment checks an order's payment with its provider and settles the
// order if the payment has reached a terminal state. The returned bool is
// true when this call moved the order out of payment_pending.
func (service *PaymentService) SyncPayment(ctx context.Context, order *models.Order) (*models.PaymentStatus, bool, ResponseType, error) {
	provider, err := service.Providers.For(order.PaymentMethod)
	if err != nil {
		return nil, false, Error, err
	}

	status, err := provider.CheckPaymentStatus(ctx, order.PaymentReference)
	if err != nil {
		return nil, false, providerResponseType(err), fmt.Errorf("error checking payment [%s]: [%w]", order.PaymentReference, err)
	}

	settled, err := service.settle(order, status.State)
	if err != nil {
		return nil, false, Error, err
	}
	return status, settled, Success, nil
}

// PendingPayments lists the orders still waiting on their gateway
func (service *PaymentService) PendingPayments() ([]models.Order, error) {
	return service.DAO.GetOrdersByStatus(models.OrderStatusPaymentPending)
}
