package errx

import (
	"errors"
	"fmt"
)

// Code classifies infrastructure failures so callers can branch without
// string matching.
type Code string

const (
	CodeInternal Code = "internal"
	CodeNotFound Code = "not_found"
	CodeStore    Code = "store"
	CodeCodec    Code = "codec"
	CodeInvalid  Code = "invalid"
)

const (
	// SystemErrorMessage is the user-facing fallback when a turn cannot be served.
	SystemErrorMessage = "Sorry, something went wrong on my side. Please try again."
	StoreErrorMessage  = "session store operation failed"
	NotFoundMessage    = "session data not found"
	CodecErrorMessage  = "session data could not be encoded"
)

// AppError wraps an underlying error with a stable code and a safe message.
type AppError struct {
	Err     error
	Code    Code
	Message string
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError.
func New(err error, code Code, message string) *AppError {
	return &AppError{
		Err:     err,
		Code:    code,
		Message: message,
	}
}

// Invalid reports a caller mistake such as an empty conversation ID.
func Invalid(message string) *AppError {
	return New(nil, CodeInvalid, message)
}

// WrapCodec wraps a JSON encode/decode failure.
func WrapCodec(err error) error {
	if err == nil {
		return nil
	}
	return New(err, CodeCodec, CodecErrorMessage)
}

// CodeOf returns the code of the first AppError in err's chain, or
// CodeInternal when there is none.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// IsNotFound reports whether err carries CodeNotFound.
func IsNotFound(err error) bool {
	return err != nil && CodeOf(err) == CodeNotFound
}
