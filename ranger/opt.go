package ranger

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/config"
	"github.com/xy-planning-network/signpost/http/resp"
	"github.com/xy-planning-network/signpost/http/router"
	"github.com/xy-planning-network/signpost/logger"
	"github.com/xy-planning-network/signpost/route"
	"github.com/xy-planning-network/signpost/view"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithEnv is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithRouter is an example of the second.
// An unexported field on the passed in *Ranger
// is updated only when the closure it returns is called.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithContext exposes the provided context.Context to the static host.
// Cancelling it stops [*Ranger.Guide].
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.ctx = ctx
		debug(rng, fmt.Sprintf("using context %T", ctx))

		return nil, nil
	}
}

// WithDistDir serves the client's build output from the directory at path.
// The directory must hold the entry document, index.html.
func WithDistDir(path string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("dist dir: %w", err)
		}

		if !info.IsDir() {
			return nil, fmt.Errorf("dist dir %s: %w", path, signpost.ErrNotValid)
		}

		rng.dist = os.DirFS(path)
		debug(rng, fmt.Sprintf("using dist dir %s", path))

		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the default Environment is set to Development.
func WithEnv(envVar string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		e := signpost.Environment(envVar)
		if err := e.Valid(); err != nil {
			e = signpost.EnvVarOrEnv(environmentEnvVar, signpost.Development)
		}

		rng.env = e
		debug(rng, fmt.Sprintf("using env %s", e))

		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the static host.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.l = l
		debug(rng, fmt.Sprintf("using logger %T", l))

		return nil, nil
	}
}

// WithResponder constructs a followup option that, when called,
// exposes the *resp.Responder to the static host.
func WithResponder(d *resp.Responder) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			rng.Responder = d
			debug(rng, "using responder")

			return nil
		}, nil
	}
}

// WithRouter constructs a followup option that, when called,
// exposes the *router.Router to the static host.
func WithRouter(r *router.Router) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			if r == nil {
				return fmt.Errorf("router: %w", signpost.ErrMissingData)
			}

			rng.Router = r
			debug(rng, fmt.Sprintf("using router %T", r))

			return nil
		}, nil
	}
}

// WithRoutes serves the route table and base path in f,
// binding views from the default view.Catalog.
func WithRoutes(f config.File) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		t, err := f.Table(catalogOf(rng))
		if err != nil {
			return nil, err
		}

		if _, err := f.NavigationMode(); err != nil {
			return nil, err
		}

		rng.file = f
		rng.table = t
		debug(rng, fmt.Sprintf("using %d routes under %q", t.Len(), f.Base))

		return nil, nil
	}
}

// WithRoutesFile reads the route table from the TOML or YAML file at path.
// Cf. WithRoutes.
func WithRoutesFile(path string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		f, err := config.Load(path)
		if err != nil {
			return nil, err
		}

		return WithRoutes(f)(rng)
	}
}

// WithServer exposes the *http.Server to the static host.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if s == nil {
			return nil, fmt.Errorf("server: %w", signpost.ErrMissingData)
		}

		old := rng.srv
		rng.srv = s

		if old != nil && s.Handler == nil {
			rng.srv.Handler = old.Handler
		}

		debug(rng, fmt.Sprintf("using server at %s", s.Addr))

		return nil, nil
	}
}

// WithTable exposes the provided route.Table to the static host,
// which answers deep links with the entry document when the table resolves them.
func WithTable(t *route.Table) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if t == nil {
			return nil, fmt.Errorf("route table: %w", signpost.ErrMissingData)
		}

		rng.table = t
		debug(rng, fmt.Sprintf("using route table with %d routes", t.Len()))

		return nil, nil
	}
}

func catalogOf(rng *Ranger) view.Catalog {
	if rng.catalog == nil {
		rng.catalog = view.DefaultCatalog()
	}

	return rng.catalog
}

func debug(rng *Ranger, msg string) {
	if rng.l != nil {
		rng.l.Debug(msg, nil)
	}
}
