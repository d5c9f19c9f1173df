package service

import (
	"context"
	"fmt"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/kanchiweaves/storefront.api/dao"
	"github.com/kanchiweaves/storefront.api/mappers"
	"github.com/kanchiweaves/storefront.api/models"
)

// RefundService issues and tracks refunds of paid orders
type RefundService struct {
	DAO            dao.DAO
	Providers      PaymentProviders
	Callbacks      CallbackDecoder
	VerifyCallback bool

	now func() time.Time
}

// NewRefundService returns a RefundService using the wall clock
func NewRefundService(store dao.DAO, providers PaymentProviders, callbacks CallbackDecoder, verifyCallbacks bool) *RefundService {
	return &RefundService{
		DAO:            store,
		Providers:      providers,
		Callbacks:      callbacks,
		VerifyCallback: verifyCallbacks,
		now:            time.Now,
	}
}

// CreateRefund refunds amount paise of an order's payment. The amount may not
// exceed the order total.
func (service *RefundService) CreateRefund(ctx context.Context, orderID string, req models.IncomingRefundRequest) (*models.RefundResponse, ResponseType, error) {
	if err := validate.Struct(req); err != nil {
		return nil, InvalidData, fmt.Errorf("invalid refund request: [%w]", err)
	}

	order, err := service.DAO.GetOrder(orderID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting order [%s]: [%w]", orderID, err)
	}
	if order == nil {
		return nil, NotFound, fmt.Errorf("order [%s] not found", orderID)
	}
	if order.Status != models.OrderStatusPaid && order.Status != models.OrderStatusShipped {
		return nil, Conflict, fmt.Errorf("order [%s] is [%s], only paid or shipped orders can be refunded", order.ID, order.Status)
	}

	total := mappers.ToPaise(order.TotalAmount)
	if req.Amount > total {
		return nil, InvalidData, fmt.Errorf("refund amount [%d] exceeds order total [%d]", req.Amount, total)
	}

	provider, err := service.Providers.For(order.PaymentMethod)
	if err != nil {
		return nil, Error, err
	}

	refundRequest := models.RefundRequest{
		MerchantRefundID: NewMerchantRefundID(service.now()),
		MerchantOrderID:  order.PaymentReference,
		Amount:           req.Amount,
	}

	refund, err := provider.InitiateRefund(ctx, order, refundRequest)
	if err != nil {
		return nil, providerResponseType(err), fmt.Errorf("error refunding order [%s]: [%w]", order.ID, err)
	}

	order.RefundReference = refund.MerchantRefundID
	switch refund.State {
	case models.PaymentStateCompleted:
		order.Status = models.OrderStatusRefunded
	case models.PaymentStatePending:
		order.Status = models.OrderStatusRefundPending
	}
	if err := service.DAO.UpdateOrder(order); err != nil {
		return nil, Error, fmt.Errorf("error recording refund [%s] on order [%s]: [%w]", refund.MerchantRefundID, order.ID, err)
	}

	log.Info("refund initiated", log.Data{"order_id": order.ID, "merchant_refund_id": refund.MerchantRefundID, "amount": refund.Amount, "state": refund.State})

	response := mappers.MapToRefundResponse(*order, *refund)
	return &response, Success, nil
}

// GetRefundStatus asks the gateway for the state of a refund and settles the
// order when the refund is terminal
func (service *RefundService) GetRefundStatus(ctx context.Context, merchantRefundID string) (*models.RefundResponse, ResponseType, error) {
	order, err := service.DAO.GetOrderByRefundReference(merchantRefundID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting order for refund [%s]: [%w]", merchantRefundID, err)
	}
	if order == nil {
		return nil, NotFound, fmt.Errorf("no order found for refund [%s]", merchantRefundID)
	}

	provider, err := service.Providers.For(order.PaymentMethod)
	if err != nil {
		return nil, Error, err
	}

	refund, err := provider.CheckRefundStatus(ctx, order)
	if err != nil {
		return nil, providerResponseType(err), fmt.Errorf("error checking refund [%s]: [%w]", merchantRefundID, err)
	}

	if _, err := service.settle(order, refund.State); err != nil {
		return nil, Error, err
	}

	response := mappers.MapToRefundResponse(*order, *refund)
	return &response, Success, nil
}

// HandleCallback settles the order a refund callback reports on. The bool is
// true when the callback moved the order out of refund_pending.
func (service *RefundService) HandleCallback(body []byte, xVerify string) (*models.Order, bool, ResponseType, error) {
	status, err := service.Callbacks.DecodeCallback(body, xVerify, service.VerifyCallback)
	if err != nil {
		if err == ErrInvalidCallbackSignature {
			return nil, false, Forbidden, err
		}
		return nil, false, InvalidData, err
	}

	order, err := service.DAO.GetOrderByRefundReference(status.Reference)
	if err != nil {
		return nil, false, Error, fmt.Errorf("error getting order for refund [%s]: [%w]", status.Reference, err)
	}
	if order == nil {
		return nil, false, NotFound, fmt.Errorf("no order found for refund [%s]", status.Reference)
	}

	settled, err := service.settle(order, status.State)
	if err != nil {
		return nil, false, Error, err
	}

	log.Info("refund callback processed", log.Data{"order_id": order.ID, "code": status.Code, "settled": settled})

	return order, settled, Success, nil
}

// settle moves a refund_pending order to refunded, or back to the status it
// had before the refund when the refund failed. The bool is true when this
// call moved the order.
func (service *RefundService) settle(order *models.Order, state models.PaymentState) (bool, error) {
	if order.Status != models.OrderStatusRefundPending {
		return false, nil
	}

	var status string
	switch state {
	case models.PaymentStateCompleted:
		status = models.OrderStatusRefunded
	case models.PaymentStateFailed:
		status = models.OrderStatusPaid
		if order.ShipmentID != 0 {
			status = models.OrderStatusShipped
		}
	default:
		return false, nil
	}

	moved, err := service.DAO.UpdateOrderStatus(order.ID, models.OrderStatusRefundPending, status)
	if err != nil {
		return false, fmt.Errorf("error settling refund of order [%s] as [%s]: [%w]", order.ID, status, err)
	}
	if !moved {
		return false, reloadOrder(service.DAO, order)
	}

	order.Status = status
	return true, nil
}
