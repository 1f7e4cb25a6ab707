package ranger

import (
	"net/http"

	"github.com/xy-planning-network/signpost/http/middleware"
	"github.com/xy-planning-network/signpost/http/resp"
	"github.com/xy-planning-network/signpost/http/router"
)

const (
	APIPrefix = "/api/v1.0"

	greeting    = "Automata Workbench: parse with CYK, minimize with FSM."
	maintenance = "The workbench is down for maintenance. Please try again shortly."
)

// A Message is the greeting the API sends the client.
type Message struct {
	Message string `json:"message"`
}

// A RouteInfo describes a route in the table the static host resolves deep links against.
type RouteInfo struct {
	Path string `json:"path"`
	Name string `json:"name"`
	View string `json:"view"`
}

// handleAPI registers the API under APIPrefix, allowing requests from origin.
func (r *Ranger) handleAPI(origin string) {
	api := r.Router.Subrouter(APIPrefix)
	api.HandleRoutes(
		[]router.Route{
			{Path: "/message", Method: http.MethodGet, Handler: r.message},
			{Path: "/routes", Method: http.MethodGet, Handler: r.routes},
		},
		middleware.CORS(origin),
	)
}

// message greets the client.
func (r *Ranger) message(w http.ResponseWriter, req *http.Request) {
	r.Json(w, req, resp.Data(Message{Message: greeting}))
}

// routes lists the route table in registration order.
func (r *Ranger) routes(w http.ResponseWriter, req *http.Request) {
	c := catalogOf(r)
	routes := r.table.Routes()
	infos := make([]RouteInfo, 0, len(routes))
	for _, rt := range routes {
		key, ok := c.KeyOf(rt.View)
		if !ok {
			key = rt.View.Name()
		}

		infos = append(infos, RouteInfo{Path: rt.Path, Name: rt.Name, View: key})
	}

	r.Json(w, req, resp.Data(infos))
}

// MaintModeHandler responds to every request with 503 Service Unavailable
// and msg, asking clients to retry in 10 minutes.
func MaintModeHandler(msg string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "600")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(msg))
	}
}
