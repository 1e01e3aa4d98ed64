package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure. Each kind maps to exactly one HTTP status
// at the boundary, so handlers never inspect error strings.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindBadRequest
)

// FieldError is a single payload validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the tagged domain error. Resource and Field carry structured
// context (e.g. which uniqueness constraint was violated); Fields is only
// populated for validation errors.
type Error struct {
	Kind     Kind
	Resource string
	Field    string
	Message  string
	Fields   []FieldError
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf returns the kind of err, or KindInternal for unrecognized errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// NotFound reports that the named resource does not exist.
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Resource: resource, Message: resource + " not found"}
}

// Conflict reports a uniqueness violation on resource.field.
func Conflict(resource, field string) *Error {
	return &Error{
		Kind:     KindConflict,
		Resource: resource,
		Field:    field,
		Message:  fmt.Sprintf("%s with this %s already exists", resource, field),
	}
}

// Forbidden reports that the actor is authenticated but not permitted.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Unauthenticated reports a missing, invalid, or expired credential.
func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

// InvalidCredentials is the single login failure. The message is identical for
// unknown email and wrong password to prevent account enumeration.
func InvalidCredentials() *Error {
	return Unauthenticated("Invalid email or password")
}

// BadRequest reports a semantically invalid reference in an otherwise
// well-formed payload.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// ValidationFailed wraps per-field payload validation failures.
func ValidationFailed(fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}
