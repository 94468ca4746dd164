// Package signature computes and checks the provider's payment signatures.
//
// A signature is the lowercase hex encoding of HMAC-SHA256 keyed by the
// merchant secret over "<orderID>|<paymentID>".
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

const separator = "|"

// Sign returns the signature the provider issues for a successful payment.
func Sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + separator + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether sig authenticates the (orderID, paymentID) pair.
// The comparison runs in constant time.
func Verify(orderID, paymentID, sig, secret string) bool {
	expected := Sign(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(sig))
}
