package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// IsCode reports whether err is, or wraps, an AppError with the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// ---- Receipt certification (RCPT) ----

const (
	CodeNormalization  = "RCPT_001"
	CodeMalformedMemo  = "RCPT_002"
	CodeNotFound       = "RCPT_003"
	CodeUpstreamFormat = "RCPT_004"
	CodeValidation     = "RCPT_005"
)

// ErrNormalization reports an amount that could not be read as a number.
func ErrNormalization(field string, err error) *AppError {
	return Wrap(CodeNormalization, fmt.Sprintf("%s is not a numeric amount", field), http.StatusUnprocessableEntity, err)
}

// ErrMalformedMemo reports a memo without the prefix delimiter.
func ErrMalformedMemo() *AppError {
	return New(CodeMalformedMemo, "Invalid ledger memo format", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ErrUpstreamFormat reports analyzer output that is not a valid record.
func ErrUpstreamFormat(err error) *AppError {
	return Wrap(CodeUpstreamFormat, "Analyzer output could not be parsed", http.StatusUnprocessableEntity, err)
}

// Validation returns a RCPT_005 validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_002", "Internal database error", http.StatusInternalServerError, err)
}

func ErrAnalyzerUnavailable(err error) *AppError {
	return Wrap("SYS_003", "Receipt analyzer unavailable", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
