package synophotos

import (
	"encoding/json"
	"errors"
)

var (
	errEmptyEnvelope = errors.New(`response has neither "data" nor "error"`)
)

// ErrorResponse is the body of an error envelope.
type ErrorResponse struct {
	Code int `json:"code"`
}

// Response is the envelope every API response is wrapped in.
//
// A response is either a success carrying a payload of type T under "data" or
// an error carrying an ErrorResponse under "error". The "success" flag is
// decoded too but it is the variant that decides what Result returns, so a
// body that has an "error" is an error even if it claims success.
type Response[T any] struct {
	Success bool

	data    T
	errResp *ErrorResponse
}

type rawResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func isPresent(m json.RawMessage) bool {
	return len(m) > 0 && string(m) != "null"
}

func (r *Response[T]) UnmarshalJSON(b []byte) error {
	var raw rawResponse
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch {
	case isPresent(raw.Error):
		var e ErrorResponse
		if err := json.Unmarshal(raw.Error, &e); err != nil {
			return err
		}
		*r = Response[T]{Success: raw.Success, errResp: &e}
	case isPresent(raw.Data):
		var data T
		if err := json.Unmarshal(raw.Data, &data); err != nil {
			return err
		}
		*r = Response[T]{Success: raw.Success, data: data}
	default:
		return errEmptyEnvelope
	}
	return nil
}

func (r Response[T]) MarshalJSON() ([]byte, error) {
	raw := struct {
		Success bool           `json:"success"`
		Data    *T             `json:"data,omitempty"`
		Error   *ErrorResponse `json:"error,omitempty"`
	}{
		Success: r.Success,
		Error:   r.errResp,
	}
	if r.errResp == nil {
		raw.Data = &r.data
	}
	return json.Marshal(raw)
}

// NewDataResponse builds a success envelope around data.
func NewDataResponse[T any](data T) Response[T] {
	return Response[T]{Success: true, data: data}
}

// NewErrorResponse builds an error envelope with the given code.
func NewErrorResponse[T any](code int) Response[T] {
	return Response[T]{Success: false, errResp: &ErrorResponse{Code: code}}
}

// IsError reports whether the envelope holds the error variant.
func (r Response[T]) IsError() bool {
	return r.errResp != nil
}

// Result unwraps the envelope, returning the payload for a success or a
// *RemoteError carrying the code for an error.
func (r Response[T]) Result() (T, error) {
	if r.errResp != nil {
		var empty T
		return empty, &RemoteError{Code: r.errResp.Code}
	}
	return r.data, nil
}
