package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"slices"
	"strings"

	"github.com/companieshouse/chs.go/log"
)

// MaxBodyBytes bounds the size of a request body the API will decode
const MaxBodyBytes = 1 << 20

// ResponseResource is the object returned in an error case
type ResponseResource struct {
	Message string `json:"message"`
}

// NewMessageResponse - convenience function for creating a response resource
func NewMessageResponse(message string) *ResponseResource {
	return &ResponseResource{Message: message}
}

// WriteJSONWithStatus writes the interface as a json string with the supplied status.
func WriteJSONWithStatus(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error writing response: %v", err))
	}
}

// WriteMessage writes a ResponseResource carrying message with the supplied status
func WriteMessage(w http.ResponseWriter, r *http.Request, message string, status int) {
	WriteJSONWithStatus(w, r, NewMessageResponse(message), status)
}

// ReadBody reads a request body of at most MaxBodyBytes
func ReadBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, fmt.Errorf("request body is empty")
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("error reading request body: [%w]", err)
	}
	if len(body) > MaxBodyBytes {
		return nil, fmt.Errorf("request body exceeds %d bytes", MaxBodyBytes)
	}
	return body, nil
}

// DecodeJSONBody unmarshals a request body of at most MaxBodyBytes into v
func DecodeJSONBody(r *http.Request, v interface{}) error {
	body, err := ReadBody(r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("error decoding request body: [%w]", err)
	}
	return nil
}

// ClientIP identifies the caller of a request. X-Forwarded-For is only read
// when the connection comes from one of trustedProxies, and then the nearest
// address not belonging to a trusted proxy is the caller.
func ClientIP(r *http.Request, trustedProxies []string) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, remote) {
		return remote
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop != "" && !slices.Contains(trustedProxies, hop) {
			return hop
		}
	}
	return remote
}
