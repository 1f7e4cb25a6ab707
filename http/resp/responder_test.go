package resp_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost/http/resp"
	"github.com/xy-planning-network/signpost/logger"
)

const entryDoc = `<!doctype html><div id="app"></div>`

func newResponder(b *bytes.Buffer) *resp.Responder {
	color.NoColor = true
	return resp.NewResponder(
		resp.WithEntry(fstest.MapFS{"index.html": {Data: []byte(entryDoc)}}, "index.html"),
		resp.WithLogger(logger.New(logger.WithLogger(log.New(b, "", 0)))),
	)
}

func TestResponderEntry(t *testing.T) {
	for _, tc := range []struct {
		name   string
		method string
		opts   []resp.Fn
		code   int
		body   string
	}{
		{"Default", http.MethodGet, nil, http.StatusOK, entryDoc},
		{"Not-Found", http.MethodGet, []resp.Fn{resp.NotFound()}, http.StatusNotFound, entryDoc},
		{"Head", http.MethodHead, nil, http.StatusOK, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			d := newResponder(new(bytes.Buffer))
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, "/cyk", nil)

			// Act
			err := d.Entry(w, r, tc.opts...)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, tc.body, w.Body.String())
			require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		})
	}
}

func TestResponderEntryMissing(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	d := resp.NewResponder(
		resp.WithEntry(fstest.MapFS{}, "index.html"),
		resp.WithLogger(logger.New(logger.WithLogger(log.New(b, "", 0)))),
	)
	w := httptest.NewRecorder()

	// Act
	err := d.Entry(w, httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	require.ErrorIs(t, err, resp.ErrMissingData)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, b.String(), "[ERROR]")

	// Arrange
	d = resp.NewResponder(resp.WithLogger(logger.New(logger.WithLogger(log.New(b, "", 0)))))
	w = httptest.NewRecorder()

	// Act
	err = d.Entry(w, httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	require.ErrorIs(t, err, resp.ErrBadConfig)
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestResponderJson(t *testing.T) {
	// Arrange
	d := newResponder(new(bytes.Buffer))
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1.0/message", nil)

	// Act
	err := d.Json(w, r, resp.Data(map[string]string{"message": "hi"}))

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"data":{"message":"hi"}}`, w.Body.String())
	require.Equal(t, "application/json; charset=UTF-8", w.Header().Get("Content-Type"))

	// Arrange
	w = httptest.NewRecorder()

	// Act
	err = d.Json(w, r, resp.Code(http.StatusTeapot))

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusTeapot, w.Code)
	require.JSONEq(t, `{"data":null}`, w.Body.String())

	// Arrange
	w = httptest.NewRecorder()

	// Act
	err = d.Json(w, r, resp.Code(0))

	// Assert
	require.ErrorIs(t, err, resp.ErrBadConfig)
}

func TestResponderErr(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	d := newResponder(b)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1.0/routes", nil)

	// Act
	d.Err(w, r, errors.New("boom"))

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "boom")
	require.Contains(t, b.String(), `"location":"/api/v1.0/routes"`)

	// Arrange
	w = httptest.NewRecorder()

	// Act
	d.Err(w, r, errors.New("nope"), resp.Code(http.StatusBadRequest))

	// Assert
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResponderDone(t *testing.T) {
	// Arrange
	d := newResponder(new(bytes.Buffer))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	// Act
	err := d.Json(httptest.NewRecorder(), r, resp.Data("x"))

	// Assert
	require.ErrorIs(t, err, resp.ErrDone)
}
