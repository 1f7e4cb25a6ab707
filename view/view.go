package view

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/xy-planning-network/signpost"
	"go.uber.org/atomic"
)

// A View is a renderable unit owned by the application.
type View interface {
	// Name identifies the View in diagnostics.
	Name() string

	// Activate prepares the View to be shown.
	// Path parameters for the navigation are available through [signpost.ParamsFromContext].
	Activate(ctx context.Context) error

	// Deactivate releases what Activate prepared.
	Deactivate(ctx context.Context) error
}

// A Renderer is a View that can write a textual rendition of itself.
type Renderer interface {
	View
	Render(w io.Writer) error
}

var (
	_ Renderer = (*Home)(nil)
	_ Renderer = (*CYK)(nil)
	_ Renderer = (*FSM)(nil)
	_ Renderer = (*NotFound)(nil)
)

// page is the state shared by the concrete views.
type page struct {
	name  string
	title string
	body  string

	active      *atomic.Bool
	activations *atomic.Int64

	mu     sync.Mutex
	params signpost.Params
}

func newPage(name, title, body string) *page {
	return &page{
		name:        name,
		title:       title,
		body:        body,
		active:      atomic.NewBool(false),
		activations: atomic.NewInt64(0),
	}
}

func (p *page) Name() string { return p.name }

func (p *page) Title() string { return p.title }

// Active asserts whether the view is currently activated.
func (p *page) Active() bool { return p.active.Load() }

// Activations counts how many times the view has been activated.
func (p *page) Activations() int64 { return p.activations.Load() }

func (p *page) Activate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	p.params = signpost.ParamsFromContext(ctx)
	p.mu.Unlock()

	p.active.Store(true)
	p.activations.Inc()
	return nil
}

func (p *page) Deactivate(_ context.Context) error {
	p.active.Store(false)
	return nil
}

func (p *page) Render(w io.Writer) error {
	p.mu.Lock()
	params := p.params
	p.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n", p.title, p.body)

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s: %s\n", k, params[k])
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Home is the landing view.
type Home struct{ *page }

func NewHome() *Home {
	return &Home{newPage("Home", "Automata Workbench", "Pick a tool: CYK parsing or FSM minimization.")}
}

// CYK hosts the CYK parsing tool.
type CYK struct{ *page }

func NewCYK() *CYK {
	return &CYK{newPage("CYK", "CYK Parser", "Check whether a grammar in Chomsky normal form derives a word.")}
}

// FSM hosts the finite state machine minimization tool.
type FSM struct{ *page }

func NewFSM() *FSM {
	return &FSM{newPage("FSM", "FSM Minimizer", "Partition the states of a machine into equivalence classes.")}
}

// NotFound is shown when a navigation matches no route.
type NotFound struct{ *page }

func NewNotFound() *NotFound {
	return &NotFound{newPage("NotFound", "Not Found", "Nothing lives at this address.")}
}
