package service

import (
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/kanchiweaves/storefront.api/dao"
	"github.com/kanchiweaves/storefront.api/mappers"
	"github.com/kanchiweaves/storefront.api/models"
)

// HandleCallback settles the order a gateway callback reports on. The bool is
// true when the callback moved the order out of payment_pending; repeated
// callbacks for a settled order succeed without changing it.
func (service *PaymentService) HandleCallback(body []byte, xVerify string) (*models.Order, bool, ResponseType, error) {
	status, err := service.Callbacks.DecodeCallback(body, xVerify, service.Config.PhonePeVerifyCallbacks)
	if err != nil {
		if err == ErrInvalidCallbackSignature {
			return nil, false, Forbidden, err
		}
		return nil, false, InvalidData, err
	}

	order, err := service.DAO.GetOrderByPaymentReference(status.Reference)
	if err != nil {
		return nil, false, Error, fmt.Errorf("error getting order for payment [%s]: [%w]", status.Reference, err)
	}
	if order == nil {
		return nil, false, NotFound, fmt.Errorf("no order found for payment [%s]", status.Reference)
	}

	settled, err := service.settle(order, status.State)
	if err != nil {
		return nil, false, Error, err
	}

	log.Info("payment callback processed", log.Data{"order_id": order.ID, "code": status.Code, "settled": settled})

	return order, settled, Success, nil
}

// settle moves a payment_pending order to paid or payment_failed. Orders in
// any other status, and non-terminal states, are left alone. Only the status
// is written, and only while the stored order is still payment_pending; when
// another caller got there first order is reloaded and false is returned.
func (service *PaymentService) settle(order *models.Order, state models.PaymentState) (bool, error) {
	if order.Status != models.OrderStatusPaymentPending {
		return false, nil
	}

	status, terminal := mappers.MapPaymentStateToOrderStatus(state)
	if !terminal {
		return false, nil
	}

	moved, err := service.DAO.UpdateOrderStatus(order.ID, models.OrderStatusPaymentPending, status)
	if err != nil {
		return false, fmt.Errorf("error settling order [%s] as [%s]: [%w]", order.ID, status, err)
	}
	if !moved {
		return false, reloadOrder(service.DAO, order)
	}

	order.Status = status
	return true, nil
}

// reloadOrder replaces order with its stored copy
func reloadOrder(store dao.DAO, order *models.Order) error {
	current, err := store.GetOrder(order.ID)
	if err != nil {
		return fmt.Errorf("error reloading order [%s]: [%w]", order.ID, err)
	}
	if current != nil {
		*order = *current
	}
	return nil
}
