package mappers

import (
	"github.com/kanchiweaves/storefront.api/models"
	"github.com/shopspring/decimal"
)

var paiseInRupee = decimal.NewFromInt(100)

// ToPaise converts a rupee amount to paise, rounding half away from zero
func ToPaise(rupees decimal.Decimal) int64 {
	return rupees.Mul(paiseInRupee).Round(0).IntPart()
}

// FromPaise converts paise to a two decimal place rupee amount
func FromPaise(paise int64) decimal.Decimal {
	return decimal.New(paise, -2)
}

// MapGatewayState reduces a gateway state code to a PaymentState. Codes that
// are not known to be terminal map to pending so that callers keep polling.
func MapGatewayState(code string) models.PaymentState {
	switch code {
	case "PAYMENT_SUCCESS", "COMPLETED":
		return models.PaymentStateCompleted
	case "PAYMENT_ERROR", "PAYMENT_DECLINED", "FAILED", "TIMED_OUT":
		return models.PaymentStateFailed
	default:
		return models.PaymentStatePending
	}
}

// MapPaymentStateToOrderStatus gives the order status a payment state settles
// an order in, and false when the state is not terminal
func MapPaymentStateToOrderStatus(state models.PaymentState) (string, bool) {
	switch state {
	case models.PaymentStateCompleted:
		return models.OrderStatusPaid, true
	case models.PaymentStateFailed:
		return models.OrderStatusPaymentFailed, true
	default:
		return "", false
	}
}

// MapToPaymentStatusResponse builds the API view of an order's payment
func MapToPaymentStatusResponse(order models.Order, status models.PaymentStatus) models.PaymentStatusResponse {
	return models.PaymentStatusResponse{
		OrderID:     order.ID,
		Reference:   status.Reference,
		Code:        status.Code,
		State:       status.State,
		OrderStatus: order.Status,
	}
}

// MapToPaymentSessionResponse builds the API view of a started payment
func MapToPaymentSessionResponse(order models.Order, session models.PaymentSession) models.PaymentSessionResponse {
	return models.PaymentSessionResponse{
		OrderID:         order.ID,
		MerchantOrderID: session.MerchantOrderID,
		RedirectURL:     session.RedirectURL,
		State:           session.State,
	}
}
