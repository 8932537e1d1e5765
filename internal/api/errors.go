package api

import "fmt"

// APIError is a failure reported by the API itself: the response arrived and
// decoded cleanly, but its success flag was false. Message is the server's
// "error" text verbatim.
type APIError struct {
	Path    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("stockfighter api error on %s: %s", e.Path, e.Message)
}

// RequestError is a transport-level failure: the request could not be built,
// sent, or its body read.
type RequestError struct {
	Path string
	Err  error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request %s: %v", e.Path, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// ResponseBodyError indicates the response body was not valid JSON.
type ResponseBodyError struct {
	Path string
	Err  error
}

func (e *ResponseBodyError) Error() string {
	return fmt.Sprintf("invalid response body from %s: %v", e.Path, e.Err)
}

func (e *ResponseBodyError) Unwrap() error { return e.Err }

// ShapeError indicates the response was valid JSON but not the shape this
// endpoint requires: a non-object top level, a missing or mistyped field, an
// unrecognized venue state, or a malformed timestamp.
type ShapeError struct {
	Path   string
	Field  string
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("unexpected response shape from %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("unexpected response shape from %s: field %q: %s", e.Path, e.Field, e.Reason)
}
