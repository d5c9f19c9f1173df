package models

// PaymentState is the gateway-neutral state of a payment or refund
type PaymentState string

// Payment states
const (
	PaymentStatePending   PaymentState = "PENDING"
	PaymentStateCompleted PaymentState = "COMPLETED"
	PaymentStateFailed    PaymentState = "FAILED"
)

// IsTerminal reports whether the gateway will not move the payment on again
func (s PaymentState) IsTerminal() bool {
	return s == PaymentStateCompleted || s == PaymentStateFailed
}

// PaymentSession is a payment started with a gateway. Reference is the id the
// gateway knows the payment by: the merchant order id for PhonePe, the
// gateway's own order id for PayPal. Amount is in paise.
type PaymentSession struct {
	MerchantOrderID string       `json:"merchantOrderId"`
	Reference       string       `json:"reference"`
	Amount          int64        `json:"amount"`
	RedirectURL     string       `json:"redirectUrl"`
	State           PaymentState `json:"state"`
}

// PaymentStatus is a point-in-time view of a payment from its gateway. Code is
// the gateway's own state code.
type PaymentStatus struct {
	Reference     string       `json:"reference"`
	Code          string       `json:"code"`
	State         PaymentState `json:"state"`
	Amount        int64        `json:"amount,omitempty"`
	TransactionID string       `json:"transactionId,omitempty"`
}

// RefundSession is a refund issued against a previous payment
type RefundSession struct {
	MerchantRefundID string       `json:"merchantRefundId"`
	MerchantOrderID  string       `json:"merchantOrderId"`
	Amount           int64        `json:"amount"`
	Code             string       `json:"code,omitempty"`
	State            PaymentState `json:"state"`
}
