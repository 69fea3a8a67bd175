package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the envelope every API error goes out in.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the code, its human-readable message, optional
// per-field details, and the trace ID of the failing request.
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption customizes an ErrorResponse at construction time.
type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail lines of the response.
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the registry message for the code.
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the envelope for a code, filling the message from
// the registry. Options apply in order, so a later WithMessage wins.
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError builds a VALIDATION_001 envelope from per-field
// messages. Details come out sorted by field name so the payload is stable
// across requests.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(details)

	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError pairs a client-safe SYSTEM_001 envelope with the original
// error. The caller logs the original; the client only ever sees the
// registry message.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// GetHTTPStatus maps an error code to the status its responses are sent
// with. Codes outside the registry fall through to 500.
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidRange, ValidationInvalidDate,
		TransactionInvalidAmount, SettingsInvalidCycleStartDay:
		return http.StatusBadRequest

	case TransactionNotFound, AdviceNotFound:
		return http.StatusNotFound

	// Well-formed requests the ledger refuses on semantic grounds.
	case TransactionConfirmationRequired, TransactionInvalidType,
		TransactionInvalidCategory:
		return http.StatusUnprocessableEntity

	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	case SystemServiceUnavailable, AdviceUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the status for this response's code.
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
