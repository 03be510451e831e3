// Package config loads navigation route tables from TOML or YAML.
//
//	id = "main"
//	mode = "hash"
//
//	[[routes]]
//	pattern = "/"
//	view = "home"
//
//	[[routes]]
//	pattern = "user/[id]"
//	view = "user-page"
//
// Hooks cannot be expressed in a file; they are attached per view id
// when the routes are built.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lestrrat-go/navi"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var (
	ErrUnknownFormat  = errors.New("config: unknown format")
	ErrInvalidMode    = errors.New("config: invalid addressing mode")
	ErrMissingAddress = errors.New("config: addressing mode requires an address source")
)

type Route struct {
	Pattern string `toml:"pattern" yaml:"pattern"`
	View    string `toml:"view" yaml:"view"`
}

type Config struct {
	ID    string `toml:"id" yaml:"id"`
	Debug bool   `toml:"debug" yaml:"debug"`
	// Mode is one of "history", "hash" or "none". Empty means "none".
	Mode string `toml:"mode" yaml:"mode"`
	// HiddenClass is the marker toggled on view elements. The engine
	// does not use it; it is handed to the view lookup.
	HiddenClass string  `toml:"hidden_class" yaml:"hidden_class"`
	Routes      []Route `toml:"routes" yaml:"routes"`
}

// Hooks are the callbacks attached to every route showing a view.
type Hooks struct {
	Hydrate navi.HookFunc
	Init    navi.HookFunc
}

// Parse decodes data in the given format and validates it.
func Parse(data []byte, format Format) (*Config, error) {
	var c Config
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("config: decoding toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("config: decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads a file, picking the format from its extension.
func Load(path string) (*Config, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = FormatTOML
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %q: %w", path, err)
	}
	return Parse(data, format)
}

// Validate checks the mode and compiles every pattern.
func (c *Config) Validate() error {
	if _, err := c.AddressMode(); err != nil {
		return err
	}
	for i, r := range c.Routes {
		if r.View == "" {
			return fmt.Errorf("config: route %d (%q): %w", i, r.Pattern, navi.ErrMissingView)
		}
		if _, err := navi.Compile(r.Pattern); err != nil {
			return fmt.Errorf("config: route %d: %w", i, err)
		}
	}
	return nil
}

func (c *Config) AddressMode() (navi.AddressMode, error) {
	switch strings.ToLower(c.Mode) {
	case "", "none":
		return navi.ModeNone, nil
	case "history":
		return navi.ModeHistory, nil
	case "hash":
		return navi.ModeHash, nil
	default:
		return navi.ModeNone, fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
}

// RouteSpecs builds the routes in file order, attaching hooks by view id.
func (c *Config) RouteSpecs(hooks map[string]Hooks) []*navi.RouteSpec {
	specs := make([]*navi.RouteSpec, 0, len(c.Routes))
	for _, r := range c.Routes {
		spec := navi.Route(r.Pattern).View(r.View)
		if h, ok := hooks[r.View]; ok {
			spec.Hydrate(h.Hydrate).Init(h.Init)
		}
		specs = append(specs, spec)
	}
	return specs
}

// Options returns the engine options described by the file. src is
// the address source for the configured mode and is ignored when the
// mode is "none".
func (c *Config) Options(src navi.AddressSource, hooks map[string]Hooks) ([]navi.Option, error) {
	mode, err := c.AddressMode()
	if err != nil {
		return nil, err
	}

	options := []navi.Option{
		navi.WithDebug(c.Debug),
		navi.WithRoutes(c.RouteSpecs(hooks)...),
	}
	if c.ID != "" {
		options = append(options, navi.WithID(c.ID))
	}

	switch mode {
	case navi.ModeHistory:
		if src == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingAddress, mode)
		}
		options = append(options, navi.WithHistory(src))
	case navi.ModeHash:
		if src == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingAddress, mode)
		}
		options = append(options, navi.WithHash(src))
	}
	return options, nil
}
