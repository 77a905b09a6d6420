package client

import (
	"errors"
	"fmt"
)

// Kind classifies a failed call. Network failures are always retryable;
// auth failures mean the session is bad; everything else is an
// operation-level rejection from the backend.
type Kind int

const (
	KindNetwork Kind = iota
	KindAuth
	KindResource
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindResource:
		return "resource"
	default:
		return "unknown"
	}
}

// Error is the typed failure every client method returns. Message is
// human-readable (the backend's message when it sent one); StatusCode is
// zero for transport-level failures.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (%d)", e.Message, e.StatusCode)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func IsNetwork(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindNetwork
}

func IsAuth(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindAuth
}
