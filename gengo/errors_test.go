package gengo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRemoteError_Generic(t *testing.T) {
	err := classifyRemoteError(&remoteError{Code: 2200, Msg: "no such job"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 2200, apiErr.Code)

	var authErr *AuthError
	assert.False(t, errors.As(err, &authErr))
}

func TestClassifyRemoteError_AuthCode(t *testing.T) {
	err := classifyRemoteError(&remoteError{Code: 1000, Msg: "bad credentials"})

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "bad credentials", authErr.Msg)
}

func TestClassifyRemoteError_NoDetail(t *testing.T) {
	err := classifyRemoteError(nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Code)
}

func TestAuthError_UnwrapsToAPIError(t *testing.T) {
	err := classifyRemoteError(&remoteError{Code: 1000, Msg: "bad sig"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "AuthError must also match *APIError")
	assert.Equal(t, 1000, apiErr.Code)
	assert.Equal(t, "bad sig", apiErr.Msg)
}

func TestErrorMessages(t *testing.T) {
	apiErr := &APIError{Code: 2200, Msg: "no such job"}
	assert.Equal(t, "gengo api error 2200: no such job", apiErr.Error())

	authErr := &AuthError{APIError{Code: 1000, Msg: "bad sig"}}
	assert.Equal(t, "gengo authentication failed: bad sig", authErr.Error())
}
