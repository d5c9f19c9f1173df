package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kanchiweaves/storefront.api/mappers"
	"github.com/kanchiweaves/storefront.api/models"
)

const (
	providerPhonePe = "phonepe"

	phonePePendingCode = "PAYMENT_PENDING"
)

// PhonePeClient is the set of gateway calls the PhonePe provider makes. It is
// satisfied by *phonepe.Client.
type PhonePeClient interface {
	InitiatePayment(ctx context.Context, req models.PaymentRequest) *models.InitiateResult
	CheckOrderStatus(ctx context.Context, merchantOrderID string) *models.StatusResult
	InitiateRefund(ctx context.Context, req models.RefundRequest) *models.RefundResult
	CheckRefundStatus(ctx context.Context, merchantRefundID string) *models.RefundStatusResult
	ValidateCallback(body []byte) *models.CallbackResult
	VerifyCallbackSignature(xVerify, base64Response string) bool
}

// PhonePeProvider takes domestic payments through the PhonePe pay page
type PhonePeProvider struct {
	Client PhonePeClient
}

// InitiatePayment starts a pay page session. PhonePe knows the payment by
// the merchant order id.
func (p *PhonePeProvider) InitiatePayment(ctx context.Context, _ *models.Order, req models.PaymentRequest) (*models.PaymentSession, error) {
	res := p.Client.InitiatePayment(ctx, req)
	if !res.Success {
		return nil, &ProviderError{Provider: providerPhonePe, Op: "payment initiation", Code: res.Code, Message: res.Error}
	}

	return &models.PaymentSession{
		MerchantOrderID: req.MerchantOrderID,
		Reference:       req.MerchantOrderID,
		Amount:          req.Amount,
		RedirectURL:     res.RedirectURL,
		State:           models.PaymentStatePending,
	}, nil
}

// CheckPaymentStatus returns the gateway's view of a payment. A declined or
// failed payment is a status, not an error.
func (p *PhonePeProvider) CheckPaymentStatus(ctx context.Context, reference string) (*models.PaymentStatus, error) {
	res := p.Client.CheckOrderStatus(ctx, reference)

	state := mappers.MapGatewayState(res.State)
	if !res.Success && !reportsPaymentState(res.State, state) {
		return nil, &ProviderError{Provider: providerPhonePe, Op: "status check", Code: res.Code, Message: res.Error}
	}

	return &models.PaymentStatus{
		Reference:     reference,
		Code:          res.State,
		State:         state,
		Amount:        res.Amount,
		TransactionID: res.TransactionID,
	}, nil
}

// InitiateRefund refunds part or all of the order's payment
func (p *PhonePeProvider) InitiateRefund(ctx context.Context, _ *models.Order, req models.RefundRequest) (*models.RefundSession, error) {
	res := p.Client.InitiateRefund(ctx, req)
	if !res.Success {
		return nil, &ProviderError{Provider: providerPhonePe, Op: "refund initiation", Code: res.Code, Message: res.Error}
	}

	refund := mappers.MapPhonePeRefund(*res, req)
	return &refund, nil
}

// CheckRefundStatus returns the gateway's view of the order's latest refund
func (p *PhonePeProvider) CheckRefundStatus(ctx context.Context, order *models.Order) (*models.RefundSession, error) {
	res := p.Client.CheckRefundStatus(ctx, order.RefundReference)

	if !res.Success && !reportsPaymentState(res.State, mappers.MapGatewayState(res.State)) {
		return nil, &ProviderError{Provider: providerPhonePe, Op: "refund status check", Code: res.Code, Message: res.Error}
	}

	refund := mappers.MapPhonePeRefundStatus(*res, order.PaymentReference)
	refund.MerchantRefundID = order.RefundReference
	return &refund, nil
}

// DecodeCallback unwraps a server to server callback and, when verify is
// set, checks its X-VERIFY header first.
func (p *PhonePeProvider) DecodeCallback(body []byte, xVerify string, verify bool) (*models.PaymentStatus, error) {
	if verify {
		var envelope struct {
			Response string `json:"response"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil || envelope.Response == "" {
			return nil, ErrInvalidCallbackSignature
		}
		if xVerify == "" || !p.Client.VerifyCallbackSignature(xVerify, envelope.Response) {
			return nil, ErrInvalidCallbackSignature
		}
	}

	res := p.Client.ValidateCallback(body)
	if !res.Success || !res.IsValid {
		return nil, fmt.Errorf("invalid callback: [%s]", res.Error)
	}

	code, _ := res.Data["code"].(string)
	data, _ := res.Data["data"].(map[string]interface{})
	reference, _ := data["merchantTransactionId"].(string)
	if reference == "" {
		return nil, fmt.Errorf("invalid callback: [missing merchantTransactionId]")
	}

	status := &models.PaymentStatus{
		Reference: reference,
		Code:      code,
		State:     mappers.MapGatewayState(code),
	}
	if amount, ok := data["amount"].(float64); ok {
		status.Amount = int64(amount)
	}
	status.TransactionID, _ = data["transactionId"].(string)

	return status, nil
}

// reportsPaymentState is true when an unsuccessful gateway response still
// describes the payment rather than a failed call
func reportsPaymentState(code string, state models.PaymentState) bool {
	return state == models.PaymentStateFailed || code == phonePePendingCode
}
