package proto

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyPayload is returned when a store with no fragments is executed.
// Nothing is sent.
var ErrEmptyPayload = errors.New("no command to send")

// DeviceError is a response that made it back fine but carries a non-zero
// device error code.
type DeviceError struct {
	Code    int
	Message string
}

func (e *DeviceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("device error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("device error %d", e.Code)
}

// StatusError is a non-2xx HTTP answer.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected http status %d", e.StatusCode)
}

// SerializationError means a command could not be turned into a fragment.
type SerializationError struct {
	Command string
	Err     error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize %s: %v", e.Command, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

func (e *SerializationError) Cause() error {
	return e.Err
}
