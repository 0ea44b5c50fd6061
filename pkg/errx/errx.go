package errx

import (
	"fmt"
	"net/http"
)

// Type classifies an error for transport mapping
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeBusiness      Type = "BUSINESS"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeInternal      Type = "INTERNAL"
	TypeExternal      Type = "EXTERNAL"
)

func (t Type) defaultStatus() int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	case TypeAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Code is a registered error definition
type Code struct {
	Code       string
	Type       Type
	HTTPStatus int
	Message    string
}

// Registry namespaces error codes for one domain package
type Registry struct {
	prefix string
}

// NewRegistry creates a registry with the given code prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix}
}

// Register defines an error code under this registry's prefix
func (r *Registry) Register(code string, t Type, status int, message string) Code {
	return Code{
		Code:       r.prefix + "_" + code,
		Type:       t,
		HTTPStatus: status,
		Message:    message,
	}
}

// New creates an Error from a registered code
func (r *Registry) New(c Code) *Error {
	return &Error{
		Code:       c.Code,
		Type:       c.Type,
		HTTPStatus: c.HTTPStatus,
		Message:    c.Message,
	}
}

// Error is the transport-aware error carried through handlers
type Error struct {
	Code       string
	Type       Type
	HTTPStatus int
	Message    string
	Details    map[string]any
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a key/value pair for logging and debugging
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause attaches the underlying error
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse renders the wire envelope for error replies.
// The underlying message is passed through on purpose; this is an
// internal tool, not a hardened public API.
func (e *Error) ToHTTPResponse() any {
	return map[string]any{
		"success": false,
		"error":   e.Error(),
	}
}

// Wrap converts an arbitrary error into an *Error of the given type
func Wrap(err error, message string, t Type) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:       string(t),
		Type:       t,
		HTTPStatus: t.defaultStatus(),
		Message:    message,
		cause:      err,
	}
}

// IsType reports whether err is an *Error of the given type
func IsType(err error, t Type) bool {
	e, ok := err.(*Error)
	return ok && e.Type == t
}
