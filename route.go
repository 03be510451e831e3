package navi

import (
	"sync/atomic"
)

// Activation is handed to hydrate and init hooks when their route
// is activated.
type Activation struct {
	Params Params
	View   View
	Route  string
}

// HookFunc is a per-route callback run during activation.
type HookFunc func(*Activation)

// InitState describes the lifecycle of a route's init hook.
type InitState int

const (
	// Armed means the init hook has not run yet.
	Armed InitState = iota
	// Fired means the init hook has run. It is terminal.
	Fired
)

func (s InitState) String() string {
	switch s {
	case Armed:
		return "armed"
	case Fired:
		return "fired"
	default:
		return "unknown"
	}
}

// RouteSpec is the registration record for one pattern. It is not
// modified by the engine, so one spec may be registered with several
// engines; each engine keeps its own init state.
type RouteSpec struct {
	pattern string
	viewID  string
	hydrate HookFunc
	init    HookFunc
}

// Route creates a new RouteSpec object with the given pattern.
func Route(pattern string) *RouteSpec {
	return &RouteSpec{
		pattern: pattern,
	}
}

// Pattern returns the pattern as given to Route.
func (r *RouteSpec) Pattern() string {
	return r.pattern
}

// View sets the identifier of the view shown when the route matches.
func (r *RouteSpec) View(id string) *RouteSpec {
	r.viewID = id
	return r
}

func (r *RouteSpec) ViewID() string {
	return r.viewID
}

// Hydrate sets the hook that runs on every activation of the route.
func (r *RouteSpec) Hydrate(fn HookFunc) *RouteSpec {
	r.hydrate = fn
	return r
}

// Init sets the hook that runs on the first activation of the route
// only.
func (r *RouteSpec) Init(fn HookFunc) *RouteSpec {
	r.init = fn
	return r
}

func (r *RouteSpec) HasInit() bool {
	return r.init != nil
}

func (r *RouteSpec) HasHydrate() bool {
	return r.hydrate != nil
}

// route is an engine's entry for a registered RouteSpec.
type route struct {
	spec    *RouteSpec
	matcher *Matcher

	// set to true once the init hook has been consumed. Routes without
	// an init hook never leave the Armed state.
	fired atomic.Bool
}

func newRoute(spec *RouteSpec) (*route, error) {
	m, err := Compile(spec.pattern)
	if err != nil {
		return nil, err
	}
	return &route{spec: spec, matcher: m}, nil
}

func (r *route) state() InitState {
	if r.fired.Load() {
		return Fired
	}
	return Armed
}

// takeInit returns the init hook and moves the route to Fired, or
// returns nil if there is nothing left to fire.
func (r *route) takeInit() HookFunc {
	if r.spec.init == nil {
		return nil
	}
	if !r.fired.CompareAndSwap(false, true) {
		return nil
	}
	return r.spec.init
}

// MatchResult is the outcome of resolving a path against the route
// table. It is not retained by the engine.
type MatchResult struct {
	ViewID  string
	Params  Params
	Route   string
	Hydrate HookFunc
	Init    HookFunc

	route *route
}

// Spec returns the route that produced the match.
func (m *MatchResult) Spec() *RouteSpec {
	return m.route.spec
}
