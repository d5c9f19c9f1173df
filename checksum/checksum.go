// Package checksum computes the X-VERIFY header value the payment gateway
// uses to authenticate merchant requests.
package checksum

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// separator sits between the hex digest and the salt index.
const separator = "###"

// Sign returns the checksum for a request carrying a JSON payload. The payload
// is base64 encoded before hashing, exactly as it is sent on the wire.
func Sign(payload []byte, endpointPath, secretKey, secretIndex string) string {
	return SignEncoded(base64.StdEncoding.EncodeToString(payload), endpointPath, secretKey, secretIndex)
}

// SignEncoded is Sign for a payload that has already been base64 encoded.
func SignEncoded(base64Payload, endpointPath, secretKey, secretIndex string) string {
	return digest(base64Payload+endpointPath+secretKey) + separator + secretIndex
}

// SignStatusCheck returns the checksum for a bodiless GET request.
func SignStatusCheck(endpointPath, secretKey, secretIndex string) string {
	return digest(endpointPath+secretKey) + separator + secretIndex
}

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
