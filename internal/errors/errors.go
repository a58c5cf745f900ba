package errors

import (
	"errors"
	"net/http"
)

// Error kinds. Every domain error wraps exactly one of these, and the kind
// alone decides the HTTP status.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation error")
	ErrUpstream        = errors.New("upstream error")
	ErrConfiguration   = errors.New("configuration error")
)

var (
	// ErrUserAlreadyExists is returned on signup with a phone number already in use.
	ErrUserAlreadyExists = New(ErrConflict, "USER_ALREADY_EXISTS", "User with this phone number already exists")
	// ErrInvalidCredentials is returned when phone or password is incorrect.
	ErrInvalidCredentials = New(ErrUnauthenticated, "INVALID_CREDENTIALS", "Invalid phone or password")
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = New(ErrNotFound, "USER_NOT_FOUND", "User not found")
	// ErrCannotDeleteSelf is returned when an admin tries to delete their own account.
	ErrCannotDeleteSelf = New(ErrValidation, "CANNOT_DELETE_SELF", "Cannot delete your own account")

	// ErrPlayerAlreadyRegistered is returned on a second registration for the same user.
	ErrPlayerAlreadyRegistered = New(ErrConflict, "PLAYER_ALREADY_REGISTERED", "Player already registered")
	// ErrNotRegistered is returned when a user without a player profile starts a payment.
	ErrNotRegistered = New(ErrNotFound, "PLAYER_NOT_REGISTERED", "Player not registered")
	// ErrAlreadyPaid is returned when the player's registration fee is already settled.
	ErrAlreadyPaid = New(ErrConflict, "ALREADY_PAID", "Payment already completed")

	ErrGatewayRejected      = New(ErrUpstream, "GATEWAY_REJECTED", "Payment gateway rejected the request")
	ErrGatewayUnavailable   = New(ErrUpstream, "GATEWAY_UNAVAILABLE", "Payment gateway is unavailable")
	ErrGatewayNotConfigured = New(ErrConfiguration, "PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured")

	// ErrMalformedWebhook is returned when a notification lacks client_txn_id.
	ErrMalformedWebhook = New(ErrValidation, "MALFORMED_WEBHOOK", "Missing client_txn_id")
	// ErrUnknownTransaction is returned when no payment matches the client_txn_id.
	ErrUnknownTransaction = New(ErrNotFound, "UNKNOWN_TRANSACTION", "Payment not found")
	// ErrInvalidSignature is returned when a webhook signature does not verify.
	ErrInvalidSignature = New(ErrUnauthenticated, "INVALID_SIGNATURE", "Invalid webhook signature")
	// ErrStaleStatus is returned when a compare-and-swap status update loses a race.
	ErrStaleStatus = New(ErrConflict, "STALE_PAYMENT_STATUS", "Payment status changed concurrently")

	ErrImageRequired    = New(ErrValidation, "IMAGE_REQUIRED", "No image file provided")
	ErrImageType        = New(ErrValidation, "INVALID_IMAGE_TYPE", "File must be an image")
	ErrImageTooLarge    = New(ErrValidation, "IMAGE_TOO_LARGE", "Image size must be less than 5MB")
	ErrUploadFailed     = New(ErrUpstream, "UPLOAD_FAILED", "Failed to upload image")
	ErrUploadNotEnabled = New(ErrConfiguration, "UPLOAD_NOT_CONFIGURED", "Image storage not configured")
)

// Error is a domain error carrying a stable code and a user-facing message.
type Error struct {
	kind    error
	code    string
	message string
}

// New creates a domain error of the given kind.
func New(kind error, code, message string) *Error {
	return &Error{kind: kind, code: code, message: message}
}

func (e *Error) Error() string { return e.message }

// Unwrap exposes the kind so errors.Is(err, ErrConflict) works.
func (e *Error) Unwrap() error { return e.kind }

// Is matches any *Error with the same code, so copies made by WithMessage
// still compare equal to their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code == e.code
}

// Code returns the stable error code.
func (e *Error) Code() string { return e.code }

// WithMessage returns a copy of e with a different message.
func (e *Error) WithMessage(message string) *Error {
	if message == "" {
		return e
	}
	return &Error{kind: e.kind, code: e.code, message: message}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

var kinds = []struct {
	kind   error
	status int
	code   string
}{
	{ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
	{ErrUnauthorized, http.StatusForbidden, "UNAUTHORIZED"},
	{ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{ErrConflict, http.StatusConflict, "CONFLICT"},
	{ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
	{ErrUpstream, http.StatusBadGateway, "UPSTREAM_ERROR"},
	{ErrConfiguration, http.StatusInternalServerError, "CONFIGURATION_ERROR"},
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	for _, k := range kinds {
		if !errors.Is(err, k.kind) {
			continue
		}
		var de *Error
		if errors.As(err, &de) {
			return NewHTTPError(k.status, de.message, de.code)
		}
		return NewHTTPError(k.status, err.Error(), k.code)
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
