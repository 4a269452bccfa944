package gengo

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
)

// signTimestamp computes the api_sig value for a request: the lowercase hex
// HMAC-SHA1 of the decimal Unix-seconds timestamp string, keyed by the
// account's private key.
//
// The signature covers only the timestamp, not the rest of the request.
// That is the authentication contract of the remote API and is preserved
// here as-is; query and body parameters are not tamper-protected by it.
func signTimestamp(privateKey, ts string) string {
	mac := hmac.New(sha1.New, []byte(privateKey))
	mac.Write([]byte(ts))
	return hex.EncodeToString(mac.Sum(nil))
}
