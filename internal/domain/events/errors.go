package events

import "errors"

var (
	ErrAlreadyExists  = errors.New("event already exists")
	ErrNotFound       = errors.New("event not found")
	ErrInvalidContext = errors.New("invalid community context")
	ErrInvalidInput   = errors.New("invalid input")
	ErrStoreFailure   = errors.New("store failure")
	ErrMalformedKey   = errors.New("malformed key")
)

// UserMessage traduce un error de comando al texto que ve el usuario.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAlreadyExists):
		return "Event already exists."
	case errors.Is(err, ErrNotFound):
		return "Event does not exist."
	case errors.Is(err, ErrInvalidContext):
		return "Invalid guild."
	case errors.Is(err, ErrInvalidInput):
		return "Invalid input."
	default:
		return "Something went wrong, please try again."
	}
}

// Outcome clasifica el error para logs y métricas.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidContext):
		return "invalid_context"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "store_failure"
	}
}
