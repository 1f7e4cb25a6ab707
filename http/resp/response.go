package resp

import (
	"fmt"
	"net/http"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while applying all
// functional options.
type Response struct {
	w    http.ResponseWriter
	r    *http.Request
	code int
	data any
	err  error
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		if c < 100 || c > 999 {
			return fmt.Errorf("%w: status code %d", ErrBadConfig, c)
		}

		r.code = c
		return nil
	}
}

// Data stores the provided value for writing to the client.
//
// Used with Responder.Json.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err sets the status code http.StatusInternalServerError and logs the error.
// Any status code already set is kept.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if r.code == 0 {
			r.code = http.StatusInternalServerError
		}

		if e == nil {
			return nil
		}

		r.err = e
		d.logger.Error(e.Error(), newLogContext(r.r, e))
		return nil
	}
}

// NotFound sets the status code http.StatusNotFound.
func NotFound() Fn { return Code(http.StatusNotFound) }
