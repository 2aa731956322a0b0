package errors

import (
	"errors"
	"net/http"

	"github.com/aws/smithy-go"
)

// FromAWS translates an AWS SDK error into an AppError by switching on the
// service error code. Unknown codes become internal errors; the original
// error stays attached as the cause. AppError values pass through untouched.
func FromAWS(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr := GetAppError(err); appErr != nil {
		return appErr
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return NewInternalError("unexpected error").WithCause(err)
	}

	code := apiErr.ErrorCode()
	message := apiErr.ErrorMessage()

	switch code {
	// DynamoDB
	case "ConditionalCheckFailedException":
		// All conditional writes here guard on attribute_exists(id)
		return NewNotFoundError("item").WithCode(code).WithCause(err)
	case "ProvisionedThroughputExceededException",
		"ThrottlingException",
		"TooManyRequestsException",
		"LimitExceededException",
		"RequestLimitExceeded":
		return NewRateLimitError(message).WithCode(code).WithCause(err)
	case "ValidationException":
		return NewValidationError(message).WithCode(code).WithCause(err)
	case "TransactionConflictException":
		return NewConflictError(message).WithCode(code).WithCause(err)

	// Cognito
	case "NotAuthorizedException":
		return NewUnauthorizedError(message).WithCode(code).WithCause(err)
	case "UserNotFoundException":
		return NewNotFoundError("user").WithCode(code).WithCause(err)
	case "UsernameExistsException", "AliasExistsException":
		return NewConflictError(message).WithCode(code).WithCause(err)
	case "CodeMismatchException",
		"ExpiredCodeException",
		"InvalidPasswordException",
		"InvalidParameterException",
		"CodeDeliveryFailureException":
		return NewValidationError(message).WithCode(code).WithCause(err)
	case "UserNotConfirmedException", "PasswordResetRequiredException":
		return NewForbiddenError(message).WithCode(code).WithCause(err)

	// S3
	case "NoSuchKey", "NotFound":
		return NewNotFoundError("object").WithCode(code).WithCause(err)
	case "AccessDenied":
		return NewForbiddenError(message).WithCode(code).WithCause(err)
	}

	return (&AppError{
		Type:       ErrorTypeExternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}).WithCode(code).WithCause(err)
}
