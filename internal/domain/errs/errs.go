package errs

import "errors"

// ValidationError marks input that failed boundary validation. Handlers map
// it to a 400 response carrying the message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation builds a ValidationError with the provided message.
func Validation(message string) error {
	return &ValidationError{Message: message}
}

// StoreError wraps a persistence failure. Handlers map it to a 500 response
// with a generic message; the cause stays in the logs.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Store wraps err as a StoreError for the given operation.
func Store(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
