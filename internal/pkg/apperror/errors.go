package apperror

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	// KindNotFound is used for top-level lookups where existence is not secret.
	KindNotFound
	// KindNotFoundOrUnauthorized covers both a missing row and a row outside the
	// caller's ownership chain. The two cases are never told apart.
	KindNotFoundOrUnauthorized
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindNotFoundOrUnauthorized:
		return "not_found_or_unauthorized"
	case KindMalformed:
		return "malformed_request"
	default:
		return "internal"
	}
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrUserNotFound     = &Error{Kind: KindNotFound, Message: "User not found"}
	ErrNotebookNotFound = &Error{Kind: KindNotFoundOrUnauthorized, Message: "Notebook not found or user is not authorized"}
	ErrPageNotFound     = &Error{Kind: KindNotFoundOrUnauthorized, Message: "Page not found or user is not authorized"}
)

func Malformed(message string) *Error {
	return &Error{Kind: KindMalformed, Message: message}
}

// KindOf reports the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
