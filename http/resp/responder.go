package resp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"sync"

	"github.com/xy-planning-network/signpost/logger"
)

const responderFrames = 1

// Responder maintains reusable pieces for responding to HTTP requests.
// These are the forms of response Responder can execute:
//
//	Entry
//	Json
//
// A single Responder suffices for the static host.
// When handling a specific HTTP request, calling code supplies additional data
// and the status code through Fn functions.
type Responder struct {
	logger logger.Logger

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool

	entry struct {
		files fs.FS
		name  string
	}
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	return d
}

// Err wraps http.Error(), logging the error causing the failure state.
//
// Use in exceptional circumstances when no other response can be formed.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	rr, nested := doer.do(w, r, append(opts, Err(err))...)
	if nested != nil {
		err = fmt.Errorf("%w: %s", err, nested)
	}

	var msg string
	if err != nil {
		msg = err.Error()
	}

	http.Error(w, msg, rr.code)
}

// Entry writes the entry document set by WithEntry.
// The client, once loaded, resolves the requested path against its route table.
//
// The default response status code is 200.
// Only the status line and headers are written for HEAD requests.
func (doer *Responder) Entry(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if doer.entry.files == nil {
		err := fmt.Errorf("%w: no entry document", ErrBadConfig)
		doer.Err(w, r, err)
		return err
	}

	b, err := fs.ReadFile(doer.entry.files, doer.entry.name)
	if err != nil {
		err = fmt.Errorf("%w: reading entry document %q: %s", ErrMissingData, doer.entry.name, err)
		doer.Err(w, r, err)
		return err
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(rr.code)
	if r.Method == http.MethodHead {
		return nil
	}

	if _, err := w.Write(b); err != nil {
		return err
	}

	return nil
}

// Json renders the data set by Data() as JSON:
//
//	{
//		"data": {...}
//	}
//
// The default response status code is 200.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := json.NewEncoder(b).Encode(jsonSchema{D: rr.data}); err != nil {
		doer.Err(w, r, err)
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(rr.code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// do applies all options to the passed in http.ResponseWriter and *http.Request.
//
// Should all options apply successfully, do returns a validly formed *Response.
// Otherwise, the first error returns alongside the *Response as formed so far.
func (doer *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	resp := &Response{w: w, r: r}

	var err error
	for _, opt := range opts {
		if r.Context().Err() != nil {
			err = fmt.Errorf("%w", ErrDone)
			break
		}

		if nested := opt(*doer, resp); nested != nil && err == nil {
			err = nested
		}
	}

	if resp.code == 0 && err != nil {
		resp.code = http.StatusInternalServerError
	}

	return resp, err
}

type jsonSchema struct {
	D any `json:"data"`
}

func newLogContext(r *http.Request, err error) *logger.LogContext {
	lc := &logger.LogContext{Error: err, Request: r}
	if r != nil {
		lc.Location = r.URL.Path
	}

	return lc
}
