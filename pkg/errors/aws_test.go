package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apiError(code, message string) error {
	return &smithy.GenericAPIError{Code: code, Message: message}
}

func TestFromAWS_CodeMapping(t *testing.T) {
	cases := []struct {
		code       string
		wantType   ErrorType
		wantStatus int
	}{
		{"ConditionalCheckFailedException", ErrorTypeNotFound, http.StatusNotFound},
		{"ProvisionedThroughputExceededException", ErrorTypeRateLimit, http.StatusTooManyRequests},
		{"ThrottlingException", ErrorTypeRateLimit, http.StatusTooManyRequests},
		{"ValidationException", ErrorTypeValidation, http.StatusBadRequest},
		{"NotAuthorizedException", ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"UserNotFoundException", ErrorTypeNotFound, http.StatusNotFound},
		{"UsernameExistsException", ErrorTypeConflict, http.StatusConflict},
		{"CodeMismatchException", ErrorTypeValidation, http.StatusBadRequest},
		{"ExpiredCodeException", ErrorTypeValidation, http.StatusBadRequest},
		{"UserNotConfirmedException", ErrorTypeForbidden, http.StatusForbidden},
		{"PasswordResetRequiredException", ErrorTypeForbidden, http.StatusForbidden},
		{"NoSuchKey", ErrorTypeNotFound, http.StatusNotFound},
		{"AccessDenied", ErrorTypeForbidden, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			appErr := FromAWS(apiError(tc.code, "boom"))
			require.NotNil(t, appErr)
			assert.Equal(t, tc.wantType, appErr.Type)
			assert.Equal(t, tc.wantStatus, appErr.HTTPStatus)
			assert.Equal(t, tc.code, appErr.Code)
		})
	}
}

func TestFromAWS_UnknownCode(t *testing.T) {
	appErr := FromAWS(apiError("SomethingNewException", "boom"))
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeExternal, appErr.Type)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
}

func TestFromAWS_WrappedAPIError(t *testing.T) {
	wrapped := fmt.Errorf("operation failed: %w", apiError("NotAuthorizedException", "bad creds"))
	appErr := FromAWS(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeUnauthorized, appErr.Type)
}

func TestFromAWS_AppErrorPassthrough(t *testing.T) {
	original := NewNotFoundError("course")
	assert.Same(t, original, FromAWS(original))
}

func TestFromAWS_PlainError(t *testing.T) {
	appErr := FromAWS(errors.New("dial tcp: connection refused"))
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeInternal, appErr.Type)
}

func TestFromAWS_Nil(t *testing.T) {
	assert.Nil(t, FromAWS(nil))
}
