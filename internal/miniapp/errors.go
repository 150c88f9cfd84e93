package miniapp

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when an action is already running
var ErrBusy = errors.New("action in progress")

// TransportError means the backend could not be reached, kept failing with 5xx,
// or answered with a body that could not be decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RejectionError is a well-formed {error} payload from the backend
type RejectionError struct {
	Status  int
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

// ValidationError is a local precondition failure. No request was sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// UserMessage maps an error to the text shown to the user
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection.Message
	}

	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation.Message
	}

	if errors.Is(err, ErrBusy) {
		return MsgBusy
	}

	return MsgNetworkError
}
