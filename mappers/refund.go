package mappers

import "github.com/kanchiweaves/storefront.api/models"

// MapPhonePeRefund maps a refund initiation result to a RefundSession
func MapPhonePeRefund(result models.RefundResult, req models.RefundRequest) models.RefundSession {
	return models.RefundSession{
		MerchantRefundID: req.MerchantRefundID,
		MerchantOrderID:  req.MerchantOrderID,
		Amount:           req.Amount,
		Code:             result.State,
		State:            MapGatewayState(result.State),
	}
}

// MapPhonePeRefundStatus maps a refund status result to a RefundSession
func MapPhonePeRefundStatus(result models.RefundStatusResult, merchantOrderID string) models.RefundSession {
	session := models.RefundSession{
		MerchantRefundID: result.RefundID,
		MerchantOrderID:  merchantOrderID,
		Amount:           result.Amount,
		Code:             result.State,
		State:            MapGatewayState(result.State),
	}
	if result.RefundDetails != nil && result.RefundDetails.State != "" {
		session.State = MapGatewayState(result.RefundDetails.State)
	}
	return session
}

// MapToRefundResponse builds the API view of a refund
func MapToRefundResponse(order models.Order, refund models.RefundSession) models.RefundResponse {
	return models.RefundResponse{
		OrderID:          order.ID,
		MerchantRefundID: refund.MerchantRefundID,
		Amount:           refund.Amount,
		Code:             refund.Code,
		State:            refund.State,
		OrderStatus:      order.Status,
	}
}
