package middleware

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/logger"
)

// LogRequest logs the request's method, requested path, and originating IP address,
// when known, using the enclosed implementation of logger.Logger.
//
// If l is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(l logger.Logger) Adapter {
	if l == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			strs := []string{r.Method, r.URL.RequestURI()}
			if ip, ok := r.Context().Value(signpost.IpAddrKey).(string); ok {
				strs = append([]string{ip}, strs...)
			}

			lc := &logger.LogContext{Location: r.URL.Path}
			if id, ok := r.Context().Value(signpost.RequestIDKey).(string); ok {
				lc.Data = map[string]any{"request_id": id}
			}

			l.Info(strings.Join(strs, " "), lc)
			h.ServeHTTP(w, r)
		})
	}
}
