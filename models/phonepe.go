package models

// PaymentRequest is the data required to start a PhonePe pay-page session.
// Amount is in paise.
type PaymentRequest struct {
	MerchantOrderID string `json:"merchantOrderId" validate:"required,max=38"`
	Amount          int64  `json:"amount"          validate:"required,gt=0"`
	RedirectURL     string `json:"redirectUrl"     validate:"required,url"`
	CallbackURL     string `json:"callbackUrl,omitempty" validate:"omitempty,url"`
	MobileNumber    string `json:"mobileNumber,omitempty" validate:"omitempty,numeric,len=10"`
	UDF1            string `json:"udf1,omitempty"`
	UDF2            string `json:"udf2,omitempty"`
	UDF3            string `json:"udf3,omitempty"`
	UDF4            string `json:"udf4,omitempty"`
	UDF5            string `json:"udf5,omitempty"`
}

// RefundRequest is the data required to refund a previous PhonePe payment.
type RefundRequest struct {
	MerchantRefundID string `json:"merchantRefundId" validate:"required,max=38"`
	MerchantOrderID  string `json:"merchantOrderId"  validate:"required"`
	Amount           int64  `json:"amount"           validate:"required,gt=0"`
}

// OutgoingPhonePePayRequest is base64 encoded and sent to /pg/v1/pay
type OutgoingPhonePePayRequest struct {
	MerchantID            string                   `json:"merchantId"`
	MerchantTransactionID string                   `json:"merchantTransactionId"`
	MerchantUserID        string                   `json:"merchantUserId"`
	Amount                int64                    `json:"amount"`
	RedirectURL           string                   `json:"redirectUrl"`
	RedirectMode          string                   `json:"redirectMode"`
	CallbackURL           string                   `json:"callbackUrl"`
	PaymentInstrument     PhonePePaymentInstrument `json:"paymentInstrument"`
	MobileNumber          string                   `json:"mobileNumber,omitempty"`
}

// PhonePePaymentInstrument selects the hosted pay page
type PhonePePaymentInstrument struct {
	Type string `json:"type"`
}

// OutgoingPhonePeRefundRequest is base64 encoded and sent to /pg/v1/refund
type OutgoingPhonePeRefundRequest struct {
	MerchantID            string `json:"merchantId"`
	MerchantUserID        string `json:"merchantUserId"`
	OriginalTransactionID string `json:"originalTransactionId"`
	MerchantTransactionID string `json:"merchantTransactionId"`
	Amount                int64  `json:"amount"`
	CallbackURL           string `json:"callbackUrl,omitempty"`
}

// PhonePeEnvelope wraps the base64 encoded payload of every PhonePe POST
type PhonePeEnvelope struct {
	Request string `json:"request"`
}

// IncomingPhonePeResponse is the envelope PhonePe returns from every endpoint.
// Success is a pointer so that a body missing the field can be told apart
// from an explicit false.
type IncomingPhonePeResponse struct {
	Success *bool               `json:"success"`
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Data    *PhonePePaymentData `json:"data"`
}

// PhonePePaymentData is the data block of pay, status and refund responses
type PhonePePaymentData struct {
	MerchantID            string                     `json:"merchantId,omitempty"`
	MerchantTransactionID string                     `json:"merchantTransactionId,omitempty"`
	TransactionID         string                     `json:"transactionId,omitempty"`
	Amount                int64                      `json:"amount,omitempty"`
	State                 string                     `json:"state,omitempty"`
	ResponseCode          string                     `json:"responseCode,omitempty"`
	InstrumentResponse    *PhonePeInstrumentResponse `json:"instrumentResponse,omitempty"`
	PaymentInstrument     map[string]interface{}     `json:"paymentInstrument,omitempty"`
}

// PhonePeInstrumentResponse carries the pay page redirect
type PhonePeInstrumentResponse struct {
	Type         string              `json:"type"`
	RedirectInfo PhonePeRedirectInfo `json:"redirectInfo"`
}

// PhonePeRedirectInfo is where the customer is sent to pay
type PhonePeRedirectInfo struct {
	URL    string `json:"url"`
	Method string `json:"method"`
}

// InitiateResult is returned from a payment initiation. When Success is false
// Error (and Code, if the gateway supplied one) describe the failure.
type InitiateResult struct {
	Success     bool                `json:"success"`
	RedirectURL string              `json:"redirectUrl,omitempty"`
	OrderID     string              `json:"orderId,omitempty"`
	State       string              `json:"state,omitempty"`
	Data        *PhonePePaymentData `json:"data,omitempty"`
	Error       string              `json:"error,omitempty"`
	Code        string              `json:"code,omitempty"`
}

// StatusResult is a point-in-time view of a payment
type StatusResult struct {
	Success           bool                   `json:"success"`
	State             string                 `json:"state,omitempty"`
	OrderID           string                 `json:"orderId,omitempty"`
	Amount            int64                  `json:"amount,omitempty"`
	TransactionID     string                 `json:"transactionId,omitempty"`
	PaymentInstrument map[string]interface{} `json:"paymentInstrument,omitempty"`
	PaymentDetails    *PhonePePaymentData    `json:"paymentDetails,omitempty"`
	Error             string                 `json:"error,omitempty"`
	Code              string                 `json:"code,omitempty"`
}

// RefundResult is returned from a refund initiation
type RefundResult struct {
	Success  bool                `json:"success"`
	State    string              `json:"state,omitempty"`
	RefundID string              `json:"refundId,omitempty"`
	Amount   int64               `json:"amount,omitempty"`
	Data     *PhonePePaymentData `json:"data,omitempty"`
	Error    string              `json:"error,omitempty"`
	Code     string              `json:"code,omitempty"`
}

// RefundStatusResult is a point-in-time view of a refund
type RefundStatusResult struct {
	Success       bool                `json:"success"`
	State         string              `json:"state,omitempty"`
	RefundID      string              `json:"refundId,omitempty"`
	Amount        int64               `json:"amount,omitempty"`
	RefundDetails *PhonePePaymentData `json:"refundDetails,omitempty"`
	Error         string              `json:"error,omitempty"`
	Code          string              `json:"code,omitempty"`
}

// CallbackResult is the decoded body of a gateway callback
type CallbackResult struct {
	Success bool                   `json:"success"`
	IsValid bool                   `json:"isValid"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   string                 `json:"error,omitempty"`
}
