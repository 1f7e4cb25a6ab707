// Package config reads route tables from TOML or YAML files.
//
// A route file names each route's view by its key in a [view.Catalog]:
//
//	mode = "history"
//	fallback = "not-found"
//
//	[[routes]]
//	path = "/"
//	name = "Home"
//	view = "home"
//
//	[[routes]]
//	path = "/cyk"
//	name = "CYK"
//	view = "cyk"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/route"
	"github.com/xy-planning-network/signpost/shell"
	"github.com/xy-planning-network/signpost/view"
	"gopkg.in/yaml.v3"
)

// A Format is the encoding of a route file.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatOf infers the Format of a route file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: unknown route file extension %q", signpost.ErrBadConfig, filepath.Ext(path))
	}
}

// A File is the contents of a route file.
type File struct {
	// Mode is "history" or "hash"; empty means history.
	Mode string `toml:"mode" yaml:"mode"`

	// Base is the path the client is mounted under.
	Base string `toml:"base" yaml:"base"`

	// Fallback is the Catalog key of the view shown when nothing matches.
	Fallback string `toml:"fallback" yaml:"fallback"`

	Routes []Route `toml:"routes" yaml:"routes"`
}

// A Route is a route entry in a route file.
type Route struct {
	Path string `toml:"path" yaml:"path"`
	Name string `toml:"name" yaml:"name"`
	View string `toml:"view" yaml:"view"`
}

// Default is the route file used when none is provided:
// Home at /, CYK at /cyk, and FSM at /fsm.
func Default() File {
	return File{
		Mode:     signpost.ModeHistory.String(),
		Fallback: view.NotFoundKey,
		Routes: []Route{
			{Path: "/", Name: "Home", View: view.HomeKey},
			{Path: "/cyk", Name: "CYK", View: view.CYKKey},
			{Path: "/fsm", Name: "FSM", View: view.FSMKey},
		},
	}
}

// Load reads the route file at path, choosing a decoder by its extension.
func Load(path string) (File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return File{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read route file %s: %w", path, err)
	}

	f, err := Decode(data, format)
	if err != nil {
		return File{}, fmt.Errorf("failed to parse route file %s: %w", path, err)
	}

	return f, nil
}

// Decode parses data in the given Format.
// Keys a File does not define are an error.
func Decode(data []byte, format Format) (File, error) {
	var f File
	switch format {
	case TOML:
		meta, err := toml.Decode(string(data), &f)
		if err != nil {
			return File{}, fmt.Errorf("%w: %s", signpost.ErrBadConfig, err)
		}

		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return File{}, fmt.Errorf("%w: unknown key %q", signpost.ErrBadConfig, undecoded[0].String())
		}

		if !meta.IsDefined("mode") {
			f.Mode = signpost.ModeHistory.String()
		}

	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return File{}, fmt.Errorf("%w: %s", signpost.ErrBadConfig, err)
		}

		if f.Mode == "" {
			f.Mode = signpost.ModeHistory.String()
		}

	default:
		return File{}, fmt.Errorf("%w: unknown format %q", signpost.ErrBadConfig, format)
	}

	return f, nil
}

// NavigationMode returns the File's Mode.
func (f File) NavigationMode() (signpost.Mode, error) {
	if f.Mode == "" {
		return signpost.ModeHistory, nil
	}

	m := signpost.Mode(strings.ToLower(strings.TrimSpace(f.Mode)))
	if err := m.Valid(); err != nil {
		return "", fmt.Errorf("%w: mode %q", signpost.ErrBadConfig, f.Mode)
	}

	return m, nil
}

// Table binds each route to its view in c and registers the routes.
func (f File) Table(c view.Catalog) (*route.Table, error) {
	routes := make([]route.Route, 0, len(f.Routes))
	for i, r := range f.Routes {
		v, err := c.Get(r.View)
		if err != nil {
			return nil, fmt.Errorf("%w: route %d (%s): %s", signpost.ErrBadConfig, i, r.Name, err)
		}

		routes = append(routes, route.Route{Path: r.Path, Name: r.Name, View: v})
	}

	return route.Register(routes)
}

// FallbackView returns the view in c named by Fallback, if set.
func (f File) FallbackView(c view.Catalog) (view.View, error) {
	if f.Fallback == "" {
		return nil, nil
	}

	v, err := c.Get(f.Fallback)
	if err != nil {
		return nil, fmt.Errorf("%w: fallback: %s", signpost.ErrBadConfig, err)
	}

	return v, nil
}

// ShellOptions converts the File's mode, base, and fallback into options for [shell.New].
func (f File) ShellOptions(c view.Catalog) ([]shell.Option, error) {
	m, err := f.NavigationMode()
	if err != nil {
		return nil, err
	}

	opts := []shell.Option{shell.WithMode(m), shell.WithBase(f.Base)}

	fb, err := f.FallbackView(c)
	if err != nil {
		return nil, err
	}

	if fb != nil {
		opts = append(opts, shell.WithFallback(fb))
	}

	return opts, nil
}
