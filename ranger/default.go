package ranger

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/config"
	"github.com/xy-planning-network/signpost/http/middleware"
	"github.com/xy-planning-network/signpost/http/resp"
	"github.com/xy-planning-network/signpost/http/router"
	"github.com/xy-planning-network/signpost/logger"
)

const (
	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"

	// Client defaults
	corsOriginEnvVar  = "CORS_ORIGIN"
	defaultCORSOrigin = "*"
	distDirEnvVar     = "DIST_DIR"
	DefaultDistDir    = "client/dist"
	entryDocument     = "index.html"
	maintModeEnvVar   = "MAINTENANCE_MODE"

	// Web server defaults
	hostEnvVar                = "HOST"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
)

// placeholder is served when no built client is found.
//
//go:embed dist/index.html
var placeholder embed.FS

// defaultOpts configures a *Ranger from environment variables.
// Options passed to New run afterwards and overwrite these.
func defaultOpts() []RangerOption {
	return []RangerOption{
		WithEnv(""),
		func(rng *Ranger) (OptFollowup, error) {
			rng.l = defaultLogger(rng.env)
			return nil, nil
		},
		func(rng *Ranger) (OptFollowup, error) {
			f, err := config.FromEnv()
			if err != nil {
				return nil, err
			}

			rng.file = f
			rng.table, err = f.Table(catalogOf(rng))
			return nil, err
		},
		func(rng *Ranger) (OptFollowup, error) {
			rng.dist = defaultDist(rng.l)
			return nil, nil
		},
		func(rng *Ranger) (OptFollowup, error) {
			rng.srv = defaultServer(rng.context)
			return nil, nil
		},
		func(rng *Ranger) (OptFollowup, error) {
			// NOTE: followups see options passed to New,
			// e.g. WithDistDir or WithLogger.
			return func() error {
				if rng.Responder == nil {
					rng.Responder = defaultResponder(rng.l, rng.dist)
				}

				if rng.Router == nil {
					rng.Router = defaultRouter(rng.env, rng.dist, rng.l)
				}

				return nil
			}, nil
		},
	}
}

// defaultLogger constructs the logger.Logger used throughout the static host.
func defaultLogger(env signpost.Environment) logger.Logger {
	l := logger.New(
		logger.WithEnv(env.String()),
		logger.WithLevel(signpost.EnvVarOrLogLevel(logLevelEnvVar, logger.LogLevelInfo)),
	)
	l.Debug("setting up logger", nil)

	return l
}

// defaultDist opens the directory DIST_DIR names,
// falling back to a placeholder entry document when it is missing.
func defaultDist(l logger.Logger) fs.FS {
	dir := signpost.EnvVarOrString(distDirEnvVar, DefaultDistDir)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return os.DirFS(dir)
	}

	l.Warn(fmt.Sprintf("no client build found at %s, serving placeholder", dir), nil)
	sub, _ := fs.Sub(placeholder, "dist")
	return sub
}

// defaultResponder configures the [*resp.Responder] serving the entry document and API.
func defaultResponder(l logger.Logger, dist fs.FS) *resp.Responder {
	return resp.NewResponder(
		resp.WithEntry(dist, entryDocument),
		resp.WithLogger(l),
	)
}

// defaultRouter constructs a [*router.Router] to be used by the web server,
// with the API registered on it.
func defaultRouter(env signpost.Environment, dist fs.FS, l logger.Logger) *router.Router {
	r := router.New(env, dist, middleware.LogRequest(l))
	r.OnEveryRequest(
		middleware.ForceHTTPS(env),
		middleware.RateLimit(middleware.NewVisitors()),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
	)

	return r
}

// defaultServer constructs a default [*http.Server].
// ctx is consulted for each connection, so it may change after defaultServer returns.
func defaultServer(ctx func() context.Context) *http.Server {
	host := signpost.EnvVarOrString(hostEnvVar, "")
	port := signpost.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	return &http.Server{
		Addr:         host + port,
		BaseContext:  func(_ net.Listener) context.Context { return ctx() },
		IdleTimeout:  signpost.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  signpost.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: signpost.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
}
