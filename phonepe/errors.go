package phonepe

import "fmt"

// StatusError is returned when PhonePe answers with a non-2xx status. Message
// and Code are filled in when the body could still be decoded.
type StatusError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("error status [%d] back from PhonePe: [%s]", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("error status [%d] back from PhonePe", e.StatusCode)
}

// DecodeError is returned when a 2xx response does not match the expected
// schema, either because it is not JSON or because a required field is absent.
type DecodeError struct {
	Endpoint string
	Field    string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("error decoding PhonePe response from %s: missing field [%s]", e.Endpoint, e.Field)
	}
	return fmt.Sprintf("error decoding PhonePe response from %s: [%v]", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
