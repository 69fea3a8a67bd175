package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidRange  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound             ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount        ErrorCode = "TRANSACTION_002"
	TransactionConfirmationRequired ErrorCode = "TRANSACTION_003"
	TransactionInvalidType          ErrorCode = "TRANSACTION_004"
	TransactionInvalidCategory      ErrorCode = "TRANSACTION_005"
)

// Settings error codes (SETTINGS_*)
const (
	SettingsInvalidCycleStartDay ErrorCode = "SETTINGS_001"
)

// Advice error codes (ADVICE_*)
const (
	AdviceUnavailable ErrorCode = "ADVICE_001"
	AdviceNotFound    ErrorCode = "ADVICE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidRange:  "Start date must not be after end date",
	ValidationInvalidDate:   "Invalid date format",

	// Transaction errors
	TransactionNotFound:             "Transaction not found",
	TransactionInvalidAmount:        "Invalid transaction amount",
	TransactionConfirmationRequired: "Deletion requires confirmation",
	TransactionInvalidType:          "Invalid transaction type",
	TransactionInvalidCategory:      "Invalid category for this transaction type",

	// Settings errors
	SettingsInvalidCycleStartDay: "Cycle start day must be between 1 and 28",

	// Advice errors
	AdviceUnavailable: "Advice generation is temporarily unavailable",
	AdviceNotFound:    "No advice has been generated yet",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
