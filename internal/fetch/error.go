package fetch

import (
	"errors"
	"fmt"
)

// Kind classifies why a catalog load failed.
type Kind string

const (
	KindTransport Kind = "transport"
	KindParse     Kind = "parse"
	KindSchema    Kind = "schema"
	KindDOMAccess Kind = "dom_access"
)

var (
	ErrTransport = errors.New("transport error")
	ErrParse     = errors.New("parse error")
	ErrSchema    = errors.New("schema error")
	ErrDOMAccess = errors.New("dom access error")
)

var sentinels = map[Kind]error{
	KindTransport: ErrTransport,
	KindParse:     ErrParse,
	KindSchema:    ErrSchema,
	KindDOMAccess: ErrDOMAccess,
}

// Error is the typed failure carried by a failed Result.
type Error struct {
	Kind       Kind
	URL        string
	StatusCode int
	Msg        string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind) + " error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind, so callers can write
// errors.Is(err, fetch.ErrSchema).
func (e *Error) Is(target error) bool {
	return sentinels[e.Kind] == target
}

func TransportError(url string, status int) *Error {
	return &Error{
		Kind:       KindTransport,
		URL:        url,
		StatusCode: status,
		Msg:        fmt.Sprintf("HTTP error: %d", status),
	}
}

func ParseError(url string, err error) *Error {
	return &Error{Kind: KindParse, URL: url, Msg: "malformed response body", Err: err}
}

func SchemaError(format string, args ...any) *Error {
	return &Error{Kind: KindSchema, Msg: fmt.Sprintf(format, args...)}
}

func DOMAccessError(id string) *Error {
	return &Error{Kind: KindDOMAccess, Msg: fmt.Sprintf("element #%s not found", id)}
}

// KindOf returns the kind of a wrapped *Error, or "" when err is not one.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
