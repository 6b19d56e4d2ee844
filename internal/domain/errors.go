package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error so the transport layer can map it to a status
// code without inspecting messages.
type Kind int

const (
	KindNotFound Kind = iota
	KindInvalidRequest
	KindNoAccess
	KindConflict
	KindPagination
	KindUnsupportedFilter
)

// Error is the single error type crossing service boundaries. Entity is set for
// not-found errors ("user", "item", "booking", "request").
type Error struct {
	Kind    Kind
	Entity  string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewNotFoundError reports an absent entity. Ownership checks on bookings
// deliberately reuse this kind so callers cannot probe for existence.
func NewNotFoundError(entity, message string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Message: message}
}

// NewValidationError reports malformed input or a violated business rule.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: message}
}

// NewNoAccessError reports an operation the actor is not allowed to perform.
func NewNoAccessError(message string) *Error {
	return &Error{Kind: KindNoAccess, Message: message}
}

// NewConflictError reports a uniqueness violation.
func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NewPaginationError reports an out-of-bounds paging parameter. Bound names
// the parameter that failed ("from" or "size").
func NewPaginationError(bound, message string) *Error {
	return &Error{Kind: KindPagination, Message: fmt.Sprintf("%s %s", bound, message)}
}

// NewUnsupportedFilterError reports an unrecognized listing state value.
func NewUnsupportedFilterError(value string) *Error {
	return &Error{Kind: KindUnsupportedFilter, Message: "Unknown state: " + value}
}

// KindOf returns the kind of a domain error and whether err is one.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}

// IsNotFound reports whether err is a domain not-found error.
func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

// IsInvalidRequest reports whether err is a domain validation error.
func IsInvalidRequest(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindInvalidRequest
}
