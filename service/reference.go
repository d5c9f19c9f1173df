package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Merchant ids are at most 38 characters: a three letter prefix, the unix
// time in milliseconds and eight random hex characters.
const (
	merchantOrderPrefix  = "ORD"
	merchantRefundPrefix = "RFD"
)

func newMerchantID(prefix string, now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s%d_%s", prefix, now.UnixMilli(), random)
}

// NewMerchantOrderID returns a fresh id for one payment attempt
func NewMerchantOrderID(now time.Time) string {
	return newMerchantID(merchantOrderPrefix, now)
}

// NewMerchantRefundID returns a fresh id for one refund attempt
func NewMerchantRefundID(now time.Time) string {
	return newMerchantID(merchantRefundPrefix, now)
}
