package router_test

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/middleware"
	"github.com/xy-planning-network/signpost/http/resp"
	"github.com/xy-planning-network/signpost/http/router"
	"github.com/xy-planning-network/signpost/logger"
	"github.com/xy-planning-network/signpost/route"
	"github.com/xy-planning-network/signpost/view"
)

const entryDoc = `<!doctype html><div id="app"></div>`

var dist = fstest.MapFS{
	"index.html":    {Data: []byte(entryDoc)},
	"assets/app.js": {Data: []byte("console.log('signpost')")},
}

func newTestRouter(t *testing.T, b *bytes.Buffer) (*router.Router, *resp.Responder, *route.Table) {
	t.Helper()
	color.NoColor = true

	l := logger.New(logger.WithLogger(log.New(b, "", 0)))
	d := resp.NewResponder(resp.WithEntry(dist, "index.html"), resp.WithLogger(l))
	table := route.MustRegister([]route.Route{
		{Path: "/", Name: "Home", View: view.NewHome()},
		{Path: "/cyk", Name: "CYK", View: view.NewCYK()},
		{Path: "/fsm/:machine", Name: "FSM", View: view.NewFSM()},
	})

	return router.New(signpost.Testing, dist, middleware.LogRequest(l)), d, table
}

func TestHistoryFallback(t *testing.T) {
	for _, tc := range []struct {
		name   string
		method string
		target string
		code   int
		body   string
	}{
		{"Root", http.MethodGet, "/", http.StatusOK, entryDoc},
		{"Deep-Link", http.MethodGet, "/cyk", http.StatusOK, entryDoc},
		{"Trailing-Slash", http.MethodGet, "/cyk/", http.StatusOK, entryDoc},
		{"Query", http.MethodGet, "/cyk?word=ab", http.StatusOK, entryDoc},
		{"Param", http.MethodGet, "/fsm/dfa-1", http.StatusOK, entryDoc},
		{"Unknown", http.MethodGet, "/nope", http.StatusNotFound, entryDoc},
		{"Head", http.MethodHead, "/cyk", http.StatusOK, ""},
		{"Post", http.MethodPost, "/cyk", http.StatusMethodNotAllowed, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			rt, d, table := newTestRouter(t, new(bytes.Buffer))
			rt.HistoryFallback(table, d)
			w := httptest.NewRecorder()

			// Act
			rt.ServeHTTP(w, httptest.NewRequest(tc.method, tc.target, nil))

			// Assert
			require.Equal(t, tc.code, w.Code)
			if tc.body != "" {
				require.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestRouterAssets(t *testing.T) {
	// Arrange
	rt, d, table := newTestRouter(t, new(bytes.Buffer))
	rt.HistoryFallback(table, d)
	w := httptest.NewRecorder()

	// Act
	rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets/app.js", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "console.log('signpost')", w.Body.String())
	require.Equal(t, "max-age=2592000", w.Header().Get("Cache-Control"))
}

func TestRouterHandleRoutes(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	rt, d, table := newTestRouter(t, b)

	var order []string
	mark := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	rt.OnEveryRequest(mark("every"))
	api := rt.Subrouter("/api/v1.0")
	api.HandleRoutes(
		[]router.Route{{
			Path:        "/message",
			Method:      http.MethodGet,
			Handler:     func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusAccepted) },
			Middlewares: []middleware.Adapter{mark("route")},
		}},
		mark("group"),
	)
	rt.HistoryFallback(table, d)
	w := httptest.NewRecorder()

	// Act
	rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1.0/message", nil))

	// Assert
	require.Equal(t, http.StatusAccepted, w.Code)
	require.Equal(t, []string{"every", "group", "route"}, order)
}

func TestRouterHandleNotFound(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	rt, _, _ := newTestRouter(t, b)
	rt.HandleNotFound(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusGone) })
	w := httptest.NewRecorder()

	// Act
	rt.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anything", nil))

	// Assert
	require.Equal(t, http.StatusGone, w.Code)
	require.Contains(t, b.String(), "GET /anything")
}
