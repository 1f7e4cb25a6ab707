package router

import (
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/middleware"
	"github.com/xy-planning-network/signpost/http/resp"
	"github.com/xy-planning-network/signpost/route"
)

const (
	// AssetsPath prefixes requests for the client's built assets.
	AssetsPath = "/assets/"

	assetsDir = "assets"
)

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests to the static host:
// client assets, the API, and finally the entry document.
type Router struct {
	Env           signpost.Environment
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
//
// Requests under [AssetsPath] are served from the assets directory in dist.
// A nil dist serves no assets.
func New(env signpost.Environment, dist fs.FS, logReq middleware.Adapter) *Router {
	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	r := mux.NewRouter()
	if dist != nil {
		if assets, err := fs.Sub(dist, assetsDir); err == nil {
			r.PathPrefix(AssetsPath).Handler(middleware.Chain(
				http.StripPrefix(AssetsPath, http.FileServer(http.FS(assets))),
				cacheControlMiddleware(),
				logReq,
			))
		}
	}

	return &Router{Env: env, logReq: logReq, r: r}
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = middleware.Chain(
		middleware.ReportPanic(r.Env)(handler),
		append(append([]middleware.Adapter{}, r.everyReqStack...), r.logReq)...,
	)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, rt := range routes {
		mws := append(append([]middleware.Adapter{}, r.everyReqStack...), middlewares...)
		mws = append(mws, rt.Middlewares...)
		handler := middleware.Chain(middleware.ReportPanic(r.Env)(rt.Handler), mws...)
		r.r.Handle(rt.Path, handler).Methods(rt.Method)
	}
}

// HistoryFallback serves the entry document for every GET or HEAD request
// no other Route matched, so a client in history mode can be deep linked.
//
// Paths the table resolves get a 200.
// Others get a 404 with the entry document anyway,
// letting the client render its own not-found view.
//
// Register HistoryFallback last; it matches every path.
func (r *Router) HistoryFallback(table *route.Table, d *resp.Responder) {
	handler := func(w http.ResponseWriter, req *http.Request) {
		if _, ok := table.Resolve(req.URL.Path); ok {
			d.Entry(w, req)
			return
		}

		d.Entry(w, req, resp.NotFound())
	}

	mws := append(append([]middleware.Adapter{}, r.everyReqStack...), r.logReq)
	r.r.PathPrefix("/").
		Methods(http.MethodGet, http.MethodHead).
		Handler(middleware.Chain(middleware.ReportPanic(r.Env)(http.HandlerFunc(handler)), mws...))
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api/v1.0") handles requests to endpoints like /api/v1.0/routes
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		Env:           r.Env,
		r:             r.r.PathPrefix(prefix).Subrouter(),
		logReq:        r.logReq,
		everyReqStack: r.everyReqStack,
	}
}

// cacheControlMiddleware helps by adding a "Cache-Control" header to the response.
func cacheControlMiddleware() middleware.Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "max-age=2592000") // 30 days
			handler.ServeHTTP(w, r)
		})
	}
}
