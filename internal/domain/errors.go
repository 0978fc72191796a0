package domain

import "errors"

// ErrorKind categorizes extraction failures so callers can branch on
// failure class (billing message for Credit, retry hints for Timeout, etc).
type ErrorKind string

const (
	ErrKindTimeout  ErrorKind = "timeout"
	ErrKindNetwork  ErrorKind = "network"
	ErrKindScraping ErrorKind = "scraping"
	ErrKindCredit   ErrorKind = "credit"
	ErrKindService  ErrorKind = "service"
	ErrKindUnknown  ErrorKind = "unknown"
)

// Wire error codes for the response envelope.
const (
	CodeTimeout  = "TIMEOUT_ERROR"
	CodeNetwork  = "NETWORK_ERROR"
	CodeScraping = "SCRAPING_ERROR"
	CodeCredit   = "CREDIT_ERROR"
	CodeService  = "SERVICE_ERROR"
	CodeUnknown  = "UNKNOWN_ERROR"
)

// ExtractionError is a typed failure from the extraction pipeline.
type ExtractionError struct {
	Kind    ErrorKind
	Message string
	Details string
	cause   error
}

// NewExtractionError creates a typed extraction error.
func NewExtractionError(kind ErrorKind, message, details string) *ExtractionError {
	return &ExtractionError{Kind: kind, Message: message, Details: details}
}

// WrapExtractionError creates a typed extraction error that wraps a cause.
func WrapExtractionError(kind ErrorKind, message string, cause error) *ExtractionError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}
	return &ExtractionError{Kind: kind, Message: message, Details: details, cause: cause}
}

func (e *ExtractionError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

func (e *ExtractionError) Unwrap() error {
	return e.cause
}

// Code returns the wire error code for the response envelope.
func (e *ExtractionError) Code() string {
	switch e.Kind {
	case ErrKindTimeout:
		return CodeTimeout
	case ErrKindNetwork:
		return CodeNetwork
	case ErrKindScraping:
		return CodeScraping
	case ErrKindCredit:
		return CodeCredit
	case ErrKindService:
		return CodeService
	default:
		return CodeUnknown
	}
}

// AsExtractionError unwraps err into an *ExtractionError if possible.
func AsExtractionError(err error) (*ExtractionError, bool) {
	var extErr *ExtractionError
	if errors.As(err, &extErr) {
		return extErr, true
	}
	return nil, false
}
