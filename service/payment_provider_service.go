package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kanchiweaves/storefront.api/models"
)

// ErrInvalidCallbackSignature is returned when a callback's X-VERIFY header
// does not match its body
var ErrInvalidCallbackSignature = errors.New("callback signature is invalid")

// PaymentProvider is an interface for all the requests to external payment providers
type PaymentProvider interface {
	InitiatePayment(ctx context.Context, order *models.Order, req models.PaymentRequest) (*models.PaymentSession, error)
	CheckPaymentStatus(ctx context.Context, reference string) (*models.PaymentStatus, error)
	InitiateRefund(ctx context.Context, order *models.Order, req models.RefundRequest) (*models.RefundSession, error)
	CheckRefundStatus(ctx context.Context, order *models.Order) (*models.RefundSession, error)
}

// CallbackDecoder turns a gateway callback body into the status it reports
type CallbackDecoder interface {
	DecodeCallback(body []byte, xVerify string, verify bool) (*models.PaymentStatus, error)
}

// PaymentProviders maps an order's payment method to its provider
type PaymentProviders map[string]PaymentProvider

// For returns the provider for a payment method
func (p PaymentProviders) For(method string) (PaymentProvider, error) {
	provider, ok := p[method]
	if !ok || provider == nil {
		return nil, fmt.Errorf("no payment provider configured for payment method [%s]", method)
	}
	return provider, nil
}

// ProviderError is returned when a payment provider rejects a call or cannot
// be reached
type ProviderError struct {
	Provider string
	Op       string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s %s failed", e.Provider, e.Op)
	if e.Code != "" {
		msg += fmt.Sprintf(" with code [%s]", e.Code)
	}
	if e.Message != "" {
		msg += fmt.Sprintf(": [%s]", e.Message)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": [%v]", e.Err)
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// providerResponseType maps an error from a provider to the response type a
// handler reports it with
func providerResponseType(err error) ResponseType {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return GatewayError
	}
	return Error
}
