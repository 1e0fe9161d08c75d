package domain

import "fmt"

// The error taxonomy is deliberately small: every failure a service can
// produce is NotFound, BadRequest, or Unauthorized. The API error handler
// resolves the concrete type to an HTTP status and surfaces the message
// as-is, so messages here are client-facing.

// NotFoundError marks a referenced entity (user, document, group,
// filename) or id-set that could not be resolved.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string { return e.msg }

// NotFoundf builds a NotFoundError with an entity-specific message.
func NotFoundf(format string, args ...any) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf(format, args...)}
}

// BadRequestError marks a domain validation failure.
type BadRequestError struct {
	msg string
}

func (e *BadRequestError) Error() string { return e.msg }

func BadRequestf(format string, args ...any) *BadRequestError {
	return &BadRequestError{msg: fmt.Sprintf(format, args...)}
}

// UnauthorizedError marks a credential or session failure.
type UnauthorizedError struct {
	msg string
}

func (e *UnauthorizedError) Error() string { return e.msg }

var (
	// ErrUserExists is returned when registering an email that is taken.
	ErrUserExists = BadRequestf("User already exists")

	// ErrWrongCredentials is shared by the "unknown email" and "wrong
	// password" paths so the response does not reveal which one failed.
	ErrWrongCredentials = &UnauthorizedError{msg: "Email or password are wrong"}

	// ErrInvalidFileType rejects uploads that are not PDF documents.
	ErrInvalidFileType = BadRequestf("Validation failed (expected type is application/pdf)")

	// ErrUsersNotFound is the all-or-nothing batch lookup failure for users.
	ErrUsersNotFound = NotFoundf("trusted or not found users")

	// ErrDocumentsNotFound is the symmetric failure for documents.
	ErrDocumentsNotFound = NotFoundf("trusted or not found documents")
)
