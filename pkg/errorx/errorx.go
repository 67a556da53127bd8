package errorx

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeInternal         Code = "INTERNAL"
	CodeInvalid          Code = "INVALID"
	CodeMalformedRequest Code = "MALFORMED_REQUEST"
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeConflict         Code = "CONFLICT"
	CodeUploadFailed     Code = "UPLOAD_FAILED"
	CodeNotFound         Code = "NOT_FOUND"
)

func (c Code) String() string {
	return string(c)
}

// Error is the closed error set crossing the application boundary.
// Fields carries per-field messages for validation and conflict errors.
type Error struct {
	Code     Code
	Message  string
	Fields   map[string][]string
	HTTPCode int
	cause    error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

func (e *Error) HTTPStatusCode() int {
	if e.HTTPCode != 0 {
		return e.HTTPCode
	}
	return HTTPStatusCode(e.Code)
}

func New(code Code, msg string, httpcode int) *Error {
	return &Error{
		Code:     code,
		Message:  msg,
		HTTPCode: httpcode,
	}
}

func NewInternal(msg string) *Error {
	return New(CodeInternal, msg, http.StatusInternalServerError)
}

func NewInvalid(msg string) *Error {
	return New(CodeInvalid, msg, http.StatusBadRequest)
}

func NewMalformedRequest(msg string) *Error {
	return New(CodeMalformedRequest, msg, http.StatusBadRequest)
}

func NewNotFound(msg string) *Error {
	return New(CodeNotFound, msg, http.StatusNotFound)
}

func NewValidationFailed(fields map[string][]string) *Error {
	return &Error{
		Code:     CodeValidationFailed,
		Message:  "Validation failed",
		Fields:   fields,
		HTTPCode: http.StatusBadRequest,
	}
}

func NewConflict(msg string, fields map[string][]string) *Error {
	return &Error{
		Code:     CodeConflict,
		Message:  msg,
		Fields:   fields,
		HTTPCode: http.StatusConflict,
	}
}

func NewUploadFailed(cause error) *Error {
	return &Error{
		Code:     CodeUploadFailed,
		Message:  "failed to store uploaded file",
		HTTPCode: http.StatusInternalServerError,
		cause:    cause,
	}
}

func HTTPStatusCode(code Code) int {
	switch code {
	case CodeInternal, CodeUploadFailed:
		return http.StatusInternalServerError
	case CodeInvalid, CodeMalformedRequest, CodeValidationFailed:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func IsCode(err error, code Code) bool {
	if err == nil {
		return false
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func IsConflict(err error) bool {
	return IsCode(err, CodeConflict)
}

func IsValidationFailed(err error) bool {
	return IsCode(err, CodeValidationFailed)
}

// Wrap annotates err with the operation name. Returns nil for nil err,
// and keeps *Error values reachable so callers can still match on Code.
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
