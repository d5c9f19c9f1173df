package service

import (
	"context"
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/kanchiweaves/storefront.api/config"
	"github.com/kanchiweaves/storefront.api/mappers"
	"github.com/kanchiweaves/storefront.api/models"
	"github.com/plutov/paypal/v4"
	"github.com/shopspring/decimal"
)

const (
	providerPayPal = "paypal"
	currencyINR    = "INR"
)

// PayPal capture states reported once a capture has been refunded
const (
	captureStatusRefunded          = "REFUNDED"
	captureStatusPartiallyRefunded = "PARTIALLY_REFUNDED"
)

// GetPayPalClient returns a PayPal client for the configured environment,
// checking the credentials by fetching an access token
func GetPayPalClient(cfg config.Config) (*paypal.Client, error) {
	paypalAPIBase := getPayPalAPIBase(cfg.PaypalEnv)
	if paypalAPIBase == "" {
		return nil, fmt.Errorf("invalid paypal env in config: %s", cfg.PaypalEnv)
	}

	c, err := paypal.NewClient(cfg.PaypalClientID, cfg.PaypalSecret, paypalAPIBase)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%v]", err)
	}
	_, err = c.GetAccessToken(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting access token: [%v]", err)
	}
	return c, nil
}

// PayPalSDK is an interface for all the PayPal client methods that will be used
// in this service
type PayPalSDK interface {
	GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error)
	CreateOrder(ctx context.Context, intent string, purchaseUnits []paypal.PurchaseUnitRequest, payer *paypal.CreateOrderPayer, appContext *paypal.ApplicationContext) (*paypal.Order, error)
	GetOrder(ctx context.Context, orderID string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string, captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error)
	RefundCapture(ctx context.Context, captureID string, refundCaptureRequest paypal.RefundCaptureRequest) (*paypal.RefundResponse, error)
}

// PayPalProvider takes international payments through PayPal checkout. Order
// totals are converted at Rate units of Currency per rupee.
type PayPalProvider struct {
	Client   PayPalSDK
	Currency string
	Rate     decimal.Decimal
}

// NewPayPalProvider builds a PayPalProvider for the configured currency. A
// currency other than INR needs a positive exchange rate.
func NewPayPalProvider(client PayPalSDK, cfg config.Config) (*PayPalProvider, error) {
	currency := cfg.PaypalCurrency
	if currency == "" {
		currency = currencyINR
	}

	if currency == currencyINR {
		return &PayPalProvider{Client: client, Currency: currency, Rate: decimal.NewFromInt(1)}, nil
	}

	if cfg.PaypalRate == "" {
		return nil, fmt.Errorf("paypal currency [%s] needs an exchange rate from INR", currency)
	}
	rate, err := decimal.NewFromString(cfg.PaypalRate)
	if err != nil {
		return nil, fmt.Errorf("invalid paypal exchange rate [%s]: [%w]", cfg.PaypalRate, err)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("paypal exchange rate must be positive, got [%s]", cfg.PaypalRate)
	}
	return &PayPalProvider{Client: client, Currency: currency, Rate: rate}, nil
}

// convert gives a paise amount in the provider's currency
func (pp *PayPalProvider) convert(paise int64) string {
	return mappers.FromPaise(paise).Mul(pp.Rate).StringFixed(2)
}

// InitiatePayment creates a PayPal order and returns its approval link. The
// PayPal order id becomes the payment reference.
func (pp *PayPalProvider) InitiatePayment(ctx context.Context, order *models.Order, req models.PaymentRequest) (*models.PaymentSession, error) {
	paypalOrder, err := pp.Client.CreateOrder(
		ctx,
		paypal.OrderIntentCapture,
		[]paypal.PurchaseUnitRequest{
			{
				ReferenceID: req.MerchantOrderID,
				Amount: &paypal.PurchaseUnitAmount{
					Value:    pp.convert(req.Amount),
					Currency: pp.Currency,
				},
			},
		},
		nil,
		&paypal.ApplicationContext{
			ReturnURL: req.RedirectURL,
			CancelURL: req.RedirectURL,
		},
	)
	if err != nil {
		return nil, &ProviderError{Provider: providerPayPal, Op: "order creation", Err: err}
	}

	if paypalOrder.Status != paypal.OrderStatusCreated {
		log.Debug(fmt.Sprintf("paypal order response status: %s", paypalOrder.Status), log.Data{"order_id": order.ID})
		return nil, &ProviderError{Provider: providerPayPal, Op: "order creation", Code: paypalOrder.Status, Message: "status is not CREATED"}
	}

	var approveURL string
	for _, link := range paypalOrder.Links {
		if link.Rel == "approve" {
			approveURL = link.Href
		}
	}
	if approveURL == "" {
		return nil, &ProviderError{Provider: providerPayPal, Op: "order creation", Message: "no approve link returned"}
	}

	return &models.PaymentSession{
		MerchantOrderID: req.MerchantOrderID,
		Reference:       paypalOrder.ID,
		Amount:          req.Amount,
		RedirectURL:     approveURL,
		State:           models.PaymentStatePending,
	}, nil
}

// CheckPaymentStatus checks the PayPal order, capturing it once the buyer has
// approved it
func (pp *PayPalProvider) CheckPaymentStatus(ctx context.Context, reference string) (*models.PaymentStatus, error) {
	paypalOrder, err := pp.Client.GetOrder(ctx, reference)
	if err != nil {
		return nil, &ProviderError{Provider: providerPayPal, Op: "status check", Err: err}
	}

	code := paypalOrder.Status
	if code == paypal.OrderStatusApproved {
		captured, err := pp.Client.CaptureOrder(ctx, reference, paypal.CaptureOrderRequest{})
		if err != nil {
			return nil, &ProviderError{Provider: providerPayPal, Op: "capture", Err: err}
		}
		code = captured.Status
	}

	return &models.PaymentStatus{
		Reference: reference,
		Code:      code,
		State:     payPalState(code),
	}, nil
}

// InitiateRefund refunds part or all of the order's capture
func (pp *PayPalProvider) InitiateRefund(ctx context.Context, order *models.Order, req models.RefundRequest) (*models.RefundSession, error) {
	capture, err := pp.capture(ctx, order.PaymentReference)
	if err != nil {
		return nil, err
	}

	refund, err := pp.Client.RefundCapture(ctx, capture.ID, paypal.RefundCaptureRequest{
		Amount: pp.refundMoney(capture, order, req.Amount),
	})
	if err != nil {
		return nil, &ProviderError{Provider: providerPayPal, Op: "refund", Err: err}
	}

	return &models.RefundSession{
		MerchantRefundID: req.MerchantRefundID,
		MerchantOrderID:  req.MerchantOrderID,
		Amount:           req.Amount,
		Code:             refund.Status,
		State:            payPalState(refund.Status),
	}, nil
}

// CheckRefundStatus reports a refund complete once PayPal marks the order's
// capture as refunded
func (pp *PayPalProvider) CheckRefundStatus(ctx context.Context, order *models.Order) (*models.RefundSession, error) {
	capture, err := pp.capture(ctx, order.PaymentReference)
	if err != nil {
		return nil, err
	}

	state := models.PaymentStatePending
	if capture.Status == captureStatusRefunded || capture.Status == captureStatusPartiallyRefunded {
		state = models.PaymentStateCompleted
	}

	return &models.RefundSession{
		MerchantRefundID: order.RefundReference,
		MerchantOrderID:  order.PaymentReference,
		Code:             capture.Status,
		State:            state,
	}, nil
}

// refundMoney gives the share of the captured amount a paise refund stands
// for, so a refund never exceeds what was charged at the capture's rate
func (pp *PayPalProvider) refundMoney(capture *paypal.CaptureAmount, order *models.Order, paise int64) *paypal.Money {
	total := mappers.ToPaise(order.TotalAmount)
	if capture.Amount == nil || total <= 0 {
		return &paypal.Money{Currency: pp.Currency, Value: pp.convert(paise)}
	}

	captured, err := decimal.NewFromString(capture.Amount.Value)
	if err != nil {
		log.Info("unreadable paypal capture amount, converting at the configured rate", log.Data{"order_id": order.ID, "value": capture.Amount.Value})
		return &paypal.Money{Currency: pp.Currency, Value: pp.convert(paise)}
	}

	share := captured.Mul(decimal.NewFromInt(paise)).Div(decimal.NewFromInt(total)).Truncate(2)
	if share.GreaterThan(captured) {
		share = captured
	}
	currency := capture.Amount.Currency
	if currency == "" {
		currency = pp.Currency
	}
	return &paypal.Money{Currency: currency, Value: share.StringFixed(2)}
}

func (pp *PayPalProvider) capture(ctx context.Context, paypalOrderID string) (*paypal.CaptureAmount, error) {
	paypalOrder, err := pp.Client.GetOrder(ctx, paypalOrderID)
	if err != nil {
		return nil, &ProviderError{Provider: providerPayPal, Op: "order lookup", Err: err}
	}

	for _, unit := range paypalOrder.PurchaseUnits {
		if unit.Payments != nil && len(unit.Payments.Captures) > 0 {
			return &unit.Payments.Captures[0], nil
		}
	}
	return nil, &ProviderError{Provider: providerPayPal, Op: "order lookup", Message: fmt.Sprintf("order [%s] has no capture", paypalOrderID)}
}

// payPalState reduces PayPal order, capture and refund statuses to a
// PaymentState
func payPalState(status string) models.PaymentState {
	switch status {
	case paypal.OrderStatusCompleted:
		return models.PaymentStateCompleted
	case paypal.OrderStatusVoided, "DECLINED", "FAILED", "CANCELLED":
		return models.PaymentStateFailed
	default:
		return models.PaymentStatePending
	}
}

func getPayPalAPIBase(env string) string {
	switch env {
	case "live":
		return paypal.APIBaseLive
	case "test":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}
