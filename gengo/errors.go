package gengo

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOperation is returned by Invoke when the logical
	// operation name is not present in the endpoint table. No network
	// activity happens in that case.
	ErrUnsupportedOperation = errors.New("unsupported api operation")

	// ErrUnsupportedVersion is returned by New when Config.APIVersion is
	// neither "1.1" nor "2".
	ErrUnsupportedVersion = errors.New("unsupported api version")
)

// authErrorCode is the remote error code reserved for credential problems.
const authErrorCode = 1000

// APIError is a failure reported by the service itself: the HTTP exchange
// succeeded but the response envelope carried opstat != "ok". Code and Msg
// are the values supplied by the service.
type APIError struct {
	Code int
	Msg  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gengo api error %d: %s", e.Code, e.Msg)
}

// AuthError is an APIError whose code identifies an authentication failure
// (bad api_key or signature). It is a distinct type so callers can
// special-case credential problems with errors.As.
type AuthError struct {
	APIError
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("gengo authentication failed: %s", e.Msg)
}

// Unwrap exposes the embedded APIError so errors.As matches both types.
func (e *AuthError) Unwrap() error {
	return &e.APIError
}

// remoteError mirrors the "err" member of a failed response envelope.
type remoteError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// classifyRemoteError picks the error variant for a failed envelope. The
// variant is decided here, before any error value is constructed, so no
// control flow happens inside constructors.
func classifyRemoteError(re *remoteError) error {
	if re == nil {
		return &APIError{Msg: "remote error with no detail"}
	}
	if re.Code == authErrorCode {
		return &AuthError{APIError{Code: re.Code, Msg: re.Msg}}
	}
	return &APIError{Code: re.Code, Msg: re.Msg}
}
