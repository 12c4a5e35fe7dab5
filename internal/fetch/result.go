package fetch

import (
	"encoding/json"
	"errors"
)

// Result is the success/failure envelope returned by every catalog fetch.
// Body is only meaningful when Success is true; Message and Err are only set
// when it is false.
type Result[T any] struct {
	Success bool
	Body    T
	Message string
	Err     error
}

func Succeed[T any](body T) Result[T] {
	return Result[T]{Success: true, Body: body}
}

func Fail[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("unknown error")
	}
	return Result[T]{Message: err.Error(), Err: err}
}

// Unwrap converts the envelope back into Go's value/error pair.
func (r Result[T]) Unwrap() (T, error) {
	if !r.Success {
		var zero T
		if r.Err != nil {
			return zero, r.Err
		}
		return zero, errors.New(r.Message)
	}
	return r.Body, nil
}

// MarshalJSON emits the wire envelope {"success":bool,"body":payload|message}.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Success {
		return json.Marshal(struct {
			Success bool `json:"success"`
			Body    T    `json:"body"`
		}{true, r.Body})
	}
	return json.Marshal(struct {
		Success bool   `json:"success"`
		Body    string `json:"body"`
	}{false, r.Message})
}
