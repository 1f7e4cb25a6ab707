package shell

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/logger"
	"github.com/xy-planning-network/signpost/route"
	"github.com/xy-planning-network/signpost/view"
	"go.uber.org/atomic"
)

// A Navigation is the outcome of moving the Shell to a new address.
type Navigation struct {
	// ID uniquely identifies the Navigation.
	ID string

	// Location is the address written to the History.
	Location string

	// Match is the route the address resolved to.
	// It is the zero value when Matched is false.
	Match route.Match

	// Matched reports whether a route matched.
	Matched bool

	// View is the View activated, which is the fallback when nothing matched.
	// It is nil when nothing matched and there is no fallback.
	View view.View
}

// write records a navigation's address in the History.
type write func(h History, location string)

func push(h History, location string) {
	if h.Location() == location {
		h.Replace(location)
		return
	}

	h.Push(location)
}

func replace(h History, location string) { h.Replace(location) }

func move(delta int) write {
	return func(h History, _ string) { h.Go(delta) }
}

// A Shell navigates a client between the views in a route table.
//
// Navigations are applied one at a time.
// Starting a navigation cancels the context of the one in flight;
// if that one still finishes activating its view, the view is deactivated,
// or reactivated for the current Navigation when it was already active,
// and that navigation returns [ErrSuperseded].
type Shell struct {
	table    *route.Table
	history  History
	mode     signpost.Mode
	base     string
	fallback view.View
	l        logger.Logger

	seq *atomic.Uint64

	// navMu serializes view side effects.
	navMu sync.Mutex

	stateMu sync.RWMutex
	cancel  context.CancelFunc
	active  view.View
	current Navigation
}

// New constructs a Shell over table.
//
// New returns an error wrapping [signpost.ErrBadConfig]
// when table is nil or the options are invalid.
func New(table *route.Table, opts ...Option) (*Shell, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: nil route table", signpost.ErrBadConfig)
	}

	s := &Shell{
		table: table,
		mode:  signpost.ModeHistory,
		seq:   atomic.NewUint64(0),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.mode.Valid(); err != nil {
		return nil, fmt.Errorf("%w: mode %q: %s", signpost.ErrBadConfig, s.mode, err)
	}

	if s.base != "" && !strings.HasPrefix(s.base, "/") {
		return nil, fmt.Errorf("%w: base %q does not start with /", signpost.ErrBadConfig, s.base)
	}
	s.base = strings.TrimSuffix(s.base, "/")

	if s.l == nil {
		s.l = logger.New()
	}

	if s.history == nil {
		s.history = NewMemoryHistory(s.href("/"))
	}

	return s, nil
}

// Table returns the route table the Shell navigates.
func (s *Shell) Table() *route.Table { return s.table }

// History returns the History the Shell writes addresses to.
func (s *Shell) History() History { return s.history }

// Active returns the View currently activated, if any.
func (s *Shell) Active() view.View {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	return s.active
}

// Current returns the last Navigation that activated a View.
func (s *Shell) Current() Navigation {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	return s.current
}

// Start resolves the address the client was loaded at, e.g. a deep link,
// replacing the current History entry.
// If location is empty, the History's current location is used.
func (s *Shell) Start(ctx context.Context, location string) (Navigation, error) {
	if location == "" {
		location = s.history.Location()
	}

	return s.navigate(ctx, s.pathOf(location), replace, false)
}

// Navigate moves to path, relative to the base, e.g. /cyk?word=ab.
// Navigating to the current address replaces it instead of adding an entry.
func (s *Shell) Navigate(ctx context.Context, path string) (Navigation, error) {
	return s.navigate(ctx, path, push, false)
}

// NavigateTo moves to the route registered under name, filling in params.
func (s *Shell) NavigateTo(ctx context.Context, name string, params signpost.Params) (Navigation, error) {
	p, err := s.table.Build(name, params)
	if err != nil {
		return Navigation{}, err
	}

	return s.navigate(ctx, p, push, false)
}

// Visit moves to a full address as typed into a location bar,
// e.g. https://example.com/app/cyk or /#/fsm.
func (s *Shell) Visit(ctx context.Context, location string) (Navigation, error) {
	return s.navigate(ctx, s.pathOf(location), push, false)
}

// Back moves to the previous History entry.
func (s *Shell) Back(ctx context.Context) (Navigation, error) {
	return s.traverse(ctx, -1)
}

// Forward moves to the next History entry.
func (s *Shell) Forward(ctx context.Context) (Navigation, error) {
	return s.traverse(ctx, 1)
}

// Link renders the address of the route registered under name in the Shell's mode.
func (s *Shell) Link(name string, params signpost.Params) (string, error) {
	p, err := s.table.Build(name, params)
	if err != nil {
		return "", err
	}

	return s.href(p), nil
}

func (s *Shell) traverse(ctx context.Context, delta int) (Navigation, error) {
	location, ok := s.history.Peek(delta)
	if !ok {
		return Navigation{}, ErrNoHistory
	}

	return s.navigate(ctx, s.pathOf(location), move(delta), true)
}

// navigate resolves path, activates the chosen View,
// and, unless superseded, commits it as the active View and records the address.
//
// When nothing matches and there is no fallback, the active View is kept.
// The address is then only recorded when traversing,
// since the client has already moved there.
func (s *Shell) navigate(ctx context.Context, path string, w write, traversing bool) (Navigation, error) {
	seq := s.seq.Inc()
	navCtx, cancel := context.WithCancel(ctx)

	s.stateMu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.stateMu.Unlock()

	nav := Navigation{ID: uuid.NewString(), Location: s.href(path)}
	lc := &logger.LogContext{Location: nav.Location, Data: map[string]any{"navigation": nav.ID}}

	s.navMu.Lock()
	defer s.navMu.Unlock()

	if s.seq.Load() != seq {
		s.l.Debug("navigation superseded before starting", lc)
		return nav, ErrSuperseded
	}

	nav.Match, nav.Matched = s.table.Match(path)
	nav.View = nav.Match.View
	if !nav.Matched {
		nav.View = s.fallback
		s.l.Info("no route matches", lc)
		if nav.View == nil {
			if traversing {
				w(s.history, nav.Location)
			}

			return nav, nil
		}
	}

	s.l.Debug(fmt.Sprintf("activating %s", nav.View.Name()), lc)

	navCtx = signpost.NewNavigationIDContext(navCtx, nav.ID)
	navCtx = signpost.NewParamsContext(navCtx, nav.Match.Params)
	if err := nav.View.Activate(navCtx); err != nil {
		if s.seq.Load() != seq && errors.Is(err, context.Canceled) {
			s.l.Debug("navigation superseded while activating", lc)
			if nav.View == s.Active() {
				s.restore(ctx, nav.View, lc)
			}

			return nav, ErrSuperseded
		}

		lc.Error = err
		s.l.Error(fmt.Sprintf("activating %s", nav.View.Name()), lc)
		return nav, fmt.Errorf("activating %s: %w", nav.View.Name(), err)
	}

	prev := s.Active()
	if s.seq.Load() != seq {
		s.l.Debug("navigation superseded after activating", lc)
		if nav.View == prev {
			s.restore(ctx, prev, lc)
		} else {
			s.deactivate(ctx, nav.View, lc)
		}

		return nav, ErrSuperseded
	}

	if prev != nil && prev != nav.View {
		s.deactivate(ctx, prev, lc)
	}

	w(s.history, nav.Location)

	s.stateMu.Lock()
	s.active = nav.View
	s.current = nav
	s.stateMu.Unlock()

	return nav, nil
}

// deactivate deactivates v, logging any error.
// A View failing to deactivate does not stop navigation.
func (s *Shell) deactivate(ctx context.Context, v view.View, lc *logger.LogContext) {
	if err := v.Deactivate(ctx); err != nil {
		s.l.Warn(fmt.Sprintf("deactivating %s", v.Name()), &logger.LogContext{
			Location: lc.Location,
			Data:     lc.Data,
			Error:    err,
		})
	}
}

// restore reactivates v, the active View, for the current Navigation,
// undoing what a superseded navigation to the same View applied.
func (s *Shell) restore(ctx context.Context, v view.View, lc *logger.LogContext) {
	cur := s.Current()
	rctx := signpost.NewNavigationIDContext(ctx, cur.ID)
	rctx = signpost.NewParamsContext(rctx, cur.Match.Params)
	if err := v.Activate(rctx); err != nil {
		s.l.Warn(fmt.Sprintf("restoring %s", v.Name()), &logger.LogContext{
			Location: cur.Location,
			Data:     lc.Data,
			Error:    err,
		})
	}
}

// href renders path as an address in the Shell's mode.
func (s *Shell) href(path string) string {
	if s.mode.IsHash() {
		return s.base + "/#" + path
	}

	return s.base + path
}

// pathOf extracts the route path from an address.
func (s *Shell) pathOf(location string) string {
	u, err := url.Parse(location)
	if err != nil {
		return location
	}

	if s.mode.IsHash() {
		if frag := u.EscapedFragment(); frag != "" {
			return frag
		}

		return "/"
	}

	p := u.EscapedPath()
	if s.base != "" {
		switch {
		case p == s.base:
			p = "/"
		case strings.HasPrefix(p, s.base+"/"):
			p = strings.TrimPrefix(p, s.base)
		}
	}

	if u.RawQuery != "" {
		p += "?" + u.RawQuery
	}

	return p
}
