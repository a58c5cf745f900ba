package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// SignatureHeader carries the HMAC-SHA256 of the raw webhook body.
const SignatureHeader = "X-Webhook-Signature"

// VerifySignature checks an HMAC-SHA256 signature of body, accepted either
// hex or base64 encoded, optionally prefixed with "sha256=".
func VerifySignature(secret string, body []byte, signature string) bool {
	signature = strings.TrimPrefix(strings.TrimSpace(signature), "sha256=")
	if secret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := mac.Sum(nil)

	if got, err := hex.DecodeString(signature); err == nil && hmac.Equal(expected, got) {
		return true
	}
	if got, err := base64.StdEncoding.DecodeString(signature); err == nil && hmac.Equal(expected, got) {
		return true
	}
	return false
}

// Sign returns the hex HMAC-SHA256 of body.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
