package synophotos

import (
	"fmt"
)

// RemoteError is returned when the API responds with an error envelope.
//
// The code is passed through as is. What a code means depends on the API that
// was called so it is left to the caller to interpret.
type RemoteError struct {
	Code int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("synology photos error code %d", e.Code)
}

// TransportError is returned when a request could not be completed or its
// response could not be understood, for example a network failure, a non 2xx
// HTTP status or a body that isn't a valid response envelope.
type TransportError struct {
	// Op is the API method that was being called, for example
	// "SYNO.API.Auth.login".
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("transport error: %v", e.Err)
	}
	return fmt.Sprintf("transport error: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
