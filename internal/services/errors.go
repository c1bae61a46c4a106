package services

import "errors"

type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindConflict   ErrorKind = "conflict"
	KindNotFound   ErrorKind = "not_found"
	KindStore      ErrorKind = "store"
)

// Error carries a kind the HTTP layer maps to a status code. Message is safe
// to show to clients for every kind except KindStore.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (err *Error) Error() string {
	if err.Err != nil {
		return err.Message + ": " + err.Err.Error()
	}
	return err.Message
}

func (err *Error) Unwrap() error {
	return err.Err
}

func ValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func ConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func StoreError(err error) *Error {
	return &Error{Kind: KindStore, Message: "store failure", Err: err}
}

var (
	ErrUsernameRequired    = ValidationError("username required")
	ErrUsernameTaken       = ConflictError("username already exists")
	ErrDescriptionRequired = ValidationError("description required")
	ErrDurationNotNumber   = ValidationError("duration is not a number")
	ErrDurationNotPositive = ValidationError("duration must be a positive number")
	ErrDateInvalid         = ValidationError("date is invalid")
	ErrFromDateInvalid     = ValidationError("from date is invalid")
	ErrToDateInvalid       = ValidationError("to date is invalid")
	ErrLimitNotNumber      = ValidationError("limit is not a number")
	ErrUserNotFound        = NotFoundError("user not found")
)

func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return KindStore
}

func MessageOf(err error) string {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Message
	}
	return ""
}
