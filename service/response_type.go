package service

// ResponseType enumerates the outcomes a service call reports to handlers
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Forbidden response
	Forbidden

	// NotFound response
	NotFound

	// Success response
	Success

	// Conflict response, the record is not in a state that allows the call
	Conflict

	// GatewayError response, a payment or shipping vendor rejected the call
	GatewayError
)

var vals = [...]string{
	"invalid-data",
	"error",
	"forbidden",
	"not-found",
	"success",
	"conflict",
	"gateway-error",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
