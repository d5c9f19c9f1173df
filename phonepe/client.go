// Package phonepe is a client for the PhonePe PG v1 pay page API. Every
// exported operation issues a single request and reports both gateway and
// transport failures in its result rather than as a Go error.
package phonepe

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/kanchiweaves/storefront.api/checksum"
	"github.com/kanchiweaves/storefront.api/models"
)

const (
	// SandboxBaseURL is used when the client is configured in SANDBOX mode
	SandboxBaseURL = "https://api-preprod.phonepe.com/apis/pg-sandbox"
	// ProductionBaseURL is used in every other mode
	ProductionBaseURL = "https://api.phonepe.com/apis/hermes"

	payEndpoint    = "/pg/v1/pay"
	refundEndpoint = "/pg/v1/refund"
	statusFormat   = "/pg/v1/status/%s/%s"

	defaultSaltIndex = "1"
	sandboxMode      = "SANDBOX"
)

// ErrMissingCredentials is returned by NewClient when the merchant id or salt
// key has not been configured.
var ErrMissingCredentials = errors.New("phonepe credentials are missing, set PHONEPE_MERCHANT_ID and PHONEPE_SALT_KEY")

// Config holds the merchant credentials issued by PhonePe
type Config struct {
	MerchantID string
	SaltKey    string
	SaltIndex  string
	Mode       string
	// HostURL is this service's public URL, used to build the refund callback
	HostURL string
}

// Client talks to the PhonePe gateway
type Client struct {
	HTTPClient *http.Client

	merchantID string
	saltKey    string
	saltIndex  string
	baseURL    string
	hostURL    string
	validate   *validator.Validate
	now        func() time.Time
}

// NewClient returns a client for the given credentials. Missing credentials
// are a configuration error the caller should treat as fatal.
func NewClient(cfg Config) (*Client, error) {
	if cfg.MerchantID == "" || cfg.SaltKey == "" {
		return nil, ErrMissingCredentials
	}

	saltIndex := cfg.SaltIndex
	if saltIndex == "" {
		saltIndex = defaultSaltIndex
	}

	baseURL := ProductionBaseURL
	if cfg.Mode == sandboxMode {
		baseURL = SandboxBaseURL
	}

	log.Info("PhonePe client initialised", log.Data{"merchant_id": cfg.MerchantID, "base_url": baseURL})

	return &Client{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		merchantID: cfg.MerchantID,
		saltKey:    cfg.SaltKey,
		saltIndex:  saltIndex,
		baseURL:    baseURL,
		hostURL:    cfg.HostURL,
		validate:   validator.New(),
		now:        time.Now,
	}, nil
}

// MerchantID returns the merchant the client signs requests for
func (c *Client) MerchantID() string {
	return c.merchantID
}

// BaseURL returns the gateway host in use
func (c *Client) BaseURL() string {
	return c.baseURL
}

// InitiatePayment starts a pay page session and returns the URL the customer
// must be redirected to.
func (c *Client) InitiatePayment(ctx context.Context, req models.PaymentRequest) *models.InitiateResult {
	if err := c.validate.Struct(req); err != nil {
		return &models.InitiateResult{Success: false, Error: fmt.Sprintf("invalid payment request: [%v]", err)}
	}

	callbackURL := req.CallbackURL
	if callbackURL == "" {
		callbackURL = req.RedirectURL
	}

	payload := models.OutgoingPhonePePayRequest{
		MerchantID:            c.merchantID,
		MerchantTransactionID: req.MerchantOrderID,
		MerchantUserID:        c.merchantUserID(),
		Amount:                req.Amount,
		RedirectURL:           req.RedirectURL,
		RedirectMode:          "POST",
		CallbackURL:           callbackURL,
		PaymentInstrument:     models.PhonePePaymentInstrument{Type: "PAY_PAGE"},
		MobileNumber:          req.MobileNumber,
	}

	resp, err := c.post(ctx, payEndpoint, payload)
	if err != nil {
		log.Error(fmt.Errorf("phonepe payment initiation error: [%w]", err), log.Data{"merchant_order_id": req.MerchantOrderID})
		return &models.InitiateResult{Success: false, Error: failureMessage(err, "Failed to initiate payment")}
	}

	if !*resp.Success {
		return &models.InitiateResult{
			Success: false,
			Error:   messageOr(resp.Message, "Payment initiation failed"),
			Code:    resp.Code,
		}
	}

	if resp.Data == nil || resp.Data.InstrumentResponse == nil || resp.Data.InstrumentResponse.RedirectInfo.URL == "" {
		err = &DecodeError{Endpoint: payEndpoint, Field: "data.instrumentResponse.redirectInfo.url"}
		log.Error(err, log.Data{"merchant_order_id": req.MerchantOrderID})
		return &models.InitiateResult{Success: false, Error: err.Error(), Code: resp.Code}
	}

	return &models.InitiateResult{
		Success:     true,
		RedirectURL: resp.Data.InstrumentResponse.RedirectInfo.URL,
		OrderID:     req.MerchantOrderID,
		State:       resp.Code,
		Data:        resp.Data,
	}
}

// CheckOrderStatus returns the gateway's current view of a payment. Callers
// poll this until a terminal state is reported.
func (c *Client) CheckOrderStatus(ctx context.Context, merchantOrderID string) *models.StatusResult {
	resp, err := c.status(ctx, merchantOrderID)
	if err != nil {
		log.Error(fmt.Errorf("phonepe order status check error: [%w]", err), log.Data{"merchant_order_id": merchantOrderID})
		return &models.StatusResult{Success: false, Error: failureMessage(err, "Failed to check order status")}
	}

	result := &models.StatusResult{
		Success:        *resp.Success,
		State:          resp.Code,
		OrderID:        merchantOrderID,
		PaymentDetails: resp.Data,
	}
	if !*resp.Success {
		result.Error = messageOr(resp.Message, "Payment status check failed")
		result.Code = resp.Code
	}
	if resp.Data != nil {
		result.Amount = resp.Data.Amount
		result.TransactionID = resp.Data.TransactionID
		result.PaymentInstrument = resp.Data.PaymentInstrument
	}

	return result
}

// InitiateRefund refunds all or part of a completed payment
func (c *Client) InitiateRefund(ctx context.Context, req models.RefundRequest) *models.RefundResult {
	if err := c.validate.Struct(req); err != nil {
		return &models.RefundResult{Success: false, Error: fmt.Sprintf("invalid refund request: [%v]", err)}
	}

	payload := models.OutgoingPhonePeRefundRequest{
		MerchantID:            c.merchantID,
		MerchantUserID:        c.merchantUserID(),
		OriginalTransactionID: req.MerchantOrderID,
		MerchantTransactionID: req.MerchantRefundID,
		Amount:                req.Amount,
	}
	if c.hostURL != "" {
		payload.CallbackURL = c.hostURL + "/api/payment/refund-callback"
	}

	resp, err := c.post(ctx, refundEndpoint, payload)
	if err != nil {
		log.Error(fmt.Errorf("phonepe refund initiation error: [%w]", err), log.Data{"merchant_refund_id": req.MerchantRefundID})
		return &models.RefundResult{Success: false, Error: failureMessage(err, "Failed to initiate refund")}
	}

	if !*resp.Success {
		return &models.RefundResult{
			Success: false,
			Error:   messageOr(resp.Message, "Refund initiation failed"),
			Code:    resp.Code,
		}
	}

	return &models.RefundResult{
		Success:  true,
		State:    resp.Code,
		RefundID: req.MerchantRefundID,
		Amount:   req.Amount,
		Data:     resp.Data,
	}
}

// CheckRefundStatus returns the gateway's current view of a refund
func (c *Client) CheckRefundStatus(ctx context.Context, merchantRefundID string) *models.RefundStatusResult {
	resp, err := c.status(ctx, merchantRefundID)
	if err != nil {
		log.Error(fmt.Errorf("phonepe refund status check error: [%w]", err), log.Data{"merchant_refund_id": merchantRefundID})
		return &models.RefundStatusResult{Success: false, Error: failureMessage(err, "Failed to check refund status")}
	}

	result := &models.RefundStatusResult{
		Success:       *resp.Success,
		State:         resp.Code,
		RefundID:      merchantRefundID,
		RefundDetails: resp.Data,
	}
	if !*resp.Success {
		result.Error = messageOr(resp.Message, "Refund status check failed")
		result.Code = resp.Code
	}
	if resp.Data != nil {
		result.Amount = resp.Data.Amount
	}

	return result
}

// ValidateCallback decodes a callback body. A base64 "response" field is
// unwrapped to the gateway's JSON; any other body, including one whose
// "response" is empty, null, false or 0, is passed through as is.
// No signature is checked here, see VerifyCallbackSignature.
func (c *Client) ValidateCallback(body []byte) *models.CallbackResult {
	var envelope map[string]interface{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return callbackFailure(fmt.Errorf("callback body is not valid json: [%w]", err))
	}

	raw := envelope["response"]
	if isEmptyField(raw) {
		return &models.CallbackResult{Success: true, IsValid: true, Data: envelope}
	}

	encoded, ok := raw.(string)
	if !ok {
		return callbackFailure(errors.New("callback response field is not a string"))
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return callbackFailure(fmt.Errorf("error decoding callback response: [%w]", err))
	}

	var data map[string]interface{}
	if err := json.Unmarshal(decoded, &data); err != nil {
		return callbackFailure(fmt.Errorf("error parsing decoded callback response: [%w]", err))
	}

	return &models.CallbackResult{Success: true, IsValid: true, Data: data}
}

// VerifyCallbackSignature checks the X-VERIFY header PhonePe attaches to
// server to server callbacks against the raw base64 response field.
func (c *Client) VerifyCallbackSignature(xVerify, base64Response string) bool {
	expected := checksum.SignEncoded(base64Response, "", c.saltKey, c.saltIndex)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(xVerify)) == 1
}

func callbackFailure(err error) *models.CallbackResult {
	log.Error(fmt.Errorf("phonepe callback validation error: [%w]", err))
	return &models.CallbackResult{Success: false, IsValid: false, Error: err.Error()}
}

func (c *Client) merchantUserID() string {
	return fmt.Sprintf("MUID_%d", c.now().UnixMilli())
}

func (c *Client) post(ctx context.Context, endpoint string, payload interface{}) (*models.IncomingPhonePeResponse, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshalling payload for %s: [%w]", endpoint, err)
	}
	encoded := base64.StdEncoding.EncodeToString(payloadBytes)

	body, err := json.Marshal(models.PhonePeEnvelope{Request: encoded})
	if err != nil {
		return nil, fmt.Errorf("error marshalling request envelope for %s: [%w]", endpoint, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("error generating request for PhonePe: [%w]", err)
	}
	request.Header.Add("X-VERIFY", checksum.SignEncoded(encoded, endpoint, c.saltKey, c.saltIndex))

	return c.do(request, endpoint)
}

func (c *Client) status(ctx context.Context, merchantTransactionID string) (*models.IncomingPhonePeResponse, error) {
	endpoint := fmt.Sprintf(statusFormat, c.merchantID, merchantTransactionID)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error generating request for PhonePe: [%w]", err)
	}
	request.Header.Add("X-VERIFY", checksum.SignStatusCheck(endpoint, c.saltKey, c.saltIndex))
	request.Header.Add("X-MERCHANT-ID", c.merchantID)

	return c.do(request, endpoint)
}

func (c *Client) do(request *http.Request, endpoint string) (*models.IncomingPhonePeResponse, error) {
	request.Header.Add("Content-Type", "application/json")
	request.Header.Add("accept", "application/json")

	resp, err := c.HTTPClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error sending request to PhonePe: [%w]", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from PhonePe: [%w]", err)
	}

	phonePeResponse := &models.IncomingPhonePeResponse{}
	decodeErr := json.Unmarshal(body, phonePeResponse)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		if decodeErr == nil {
			statusErr.Message = phonePeResponse.Message
			statusErr.Code = phonePeResponse.Code
		}
		return nil, statusErr
	}

	if decodeErr != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: decodeErr}
	}
	if phonePeResponse.Success == nil {
		return nil, &DecodeError{Endpoint: endpoint, Field: "success"}
	}

	return phonePeResponse, nil
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}

// failureMessage prefers the gateway's own message, then the error text
func failureMessage(err error, fallback string) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return messageOr(err.Error(), fallback)
}

// isEmptyField reports whether a decoded JSON value is absent or empty
func isEmptyField(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	default:
		return false
	}
}
