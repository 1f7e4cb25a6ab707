package ranger

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/config"
	"github.com/xy-planning-network/signpost/http/resp"
	"github.com/xy-planning-network/signpost/http/router"
	"github.com/xy-planning-network/signpost/logger"
	"github.com/xy-planning-network/signpost/route"
	"github.com/xy-planning-network/signpost/view"
)

// A Ranger manages and exposes all components of a signpost static host to one another.
type Ranger struct {
	*resp.Responder
	*router.Router

	ctx     context.Context
	cancel  context.CancelFunc
	catalog view.Catalog
	dist    fs.FS
	env     signpost.Environment
	file    config.File
	l       logger.Logger
	srv     *http.Server
	table   *route.Table

	fallback sync.Once
}

// New constructs a Ranger from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
func New(opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	followups := make([]OptFollowup, 0)

	// NOTE(dlk): calling an option configures the *Ranger under construction.
	// Some options require data from other options.
	// These options, therefore, must delay configuring the *Ranger
	// until either (1) user supplied RangerOptions or (2) default RangerOptions
	// configure the *Ranger first.
	// They return an OptFollowup to be called after the initial set of options are run.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", signpost.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", signpost.ErrBadConfig, err)
		}
	}

	return r, nil
}

func (r *Ranger) EmitEnv() signpost.Environment { return r.env }
func (r *Ranger) EmitLogger() logger.Logger     { return r.l }
func (r *Ranger) EmitTable() *route.Table       { return r.table }

// Handler returns the http.Handler the web server serves,
// registering the API and the history fallback the first time it is called.
//
// Routes registered on the Ranger after Handler is first called
// are shadowed by the fallback for GET and HEAD requests.
//
// When MAINTENANCE_MODE is true, every request gets [MaintModeHandler] instead.
func (r *Ranger) Handler() http.Handler {
	if signpost.EnvVarOrBool(maintModeEnvVar, false) {
		return MaintModeHandler(maintenance)
	}

	r.fallback.Do(func() {
		r.handleAPI(signpost.EnvVarOrString(corsOriginEnvVar, defaultCORSOrigin))
		r.Router.HistoryFallback(r.table, r.Responder)
	})

	return mount(r.file.Base, r.Router)
}

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	r.ctx, r.cancel = context.WithCancel(r.context())

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	errs := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		r.srv.Handler = r.Handler()
		if err := r.srv.ListenAndServe(); err != http.ErrServerClosed {
			err = fmt.Errorf("could not listen: %w", err)
			r.l.Error(err.Error(), nil)
			errs <- err
		}
	}()

	select {
	case err := <-errs:
		r.cancel()
		return err
	case <-r.ctx.Done():
		return r.Shutdown()
	}
}

// Shutdown shutdowns the web server.
func (r *Ranger) Shutdown() error {
	if r.cancel != nil {
		r.cancel()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	if err == http.ErrServerClosed {
		r.l.Info("web server shutdown successfully", nil)
		return nil
	}

	if err != nil {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}

func (r *Ranger) context() context.Context {
	if r.ctx == nil {
		return context.Background()
	}

	return r.ctx
}

// mount serves h under base,
// handing it paths relative to base and 404ing everything else.
func mount(base string, h http.Handler) http.Handler {
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		return h
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p string
		switch {
		case r.URL.Path == base:
			p = "/"
		case strings.HasPrefix(r.URL.Path, base+"/"):
			p = strings.TrimPrefix(r.URL.Path, base)
		default:
			http.NotFound(w, r)
			return
		}

		r2 := r.Clone(r.Context())
		r2.URL.Path = p
		r2.URL.RawPath = ""
		h.ServeHTTP(w, r2)
	})
}
