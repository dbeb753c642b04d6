package services

import "fmt"

// RemoteError is an explicit error payload returned by a backend endpoint.
type RemoteError struct {
	Endpoint string
	Detail   string
}

func (e *RemoteError) Error() string {
	return e.Detail
}

// TransportError wraps a failure to reach or read from a backend endpoint.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError is a non-2xx response that carried no error payload.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %s", e.Endpoint, e.Status)
}
