package shiprocket

import "fmt"

// APIError is returned from every failed Shiprocket operation. StatusCode is
// zero when no response was received, in which case Err holds the cause.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("shiprocket %s failed", e.Op)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" with status [%d]", e.StatusCode)
	}
	msg += fmt.Sprintf(": [%s]", e.Message)
	if e.Err != nil {
		msg += fmt.Sprintf(": [%v]", e.Err)
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}
