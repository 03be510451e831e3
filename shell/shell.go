// Package shell serves the single-page document for history-mode
// deep links: a reload of "/user/42" must return the same page as "/",
// and the client-side engine takes it from there.
package shell

import (
	"bytes"
	"net/http"
	"time"

	"github.com/lestrrat-go/navi"
	"github.com/lestrrat-go/navi/middleware"
)

// Resolver is the part of navi.Engine the shell needs.
type Resolver interface {
	Resolve(string) (*navi.MatchResult, bool)
}

type config struct {
	resolver    Resolver
	contentType string
	accessLog   bool
	modTime     time.Time
}

type Option func(*config)

// StrictRoutes makes the shell answer 404 for paths that r cannot
// resolve, instead of serving the document for every path.
func StrictRoutes(r Resolver) Option {
	return func(c *config) {
		c.resolver = r
	}
}

// WithContentType overrides the default "text/html; charset=utf-8".
func WithContentType(v string) Option {
	return func(c *config) {
		c.contentType = v
	}
}

// WithAccessLog toggles request logging. It is on by default.
func WithAccessLog(v bool) Option {
	return func(c *config) {
		c.accessLog = v
	}
}

// WithModTime sets the modification time used for conditional requests.
func WithModTime(t time.Time) Option {
	return func(c *config) {
		c.modTime = t
	}
}

// Handler returns an http.Handler that serves document for GET and
// HEAD requests on any path.
func Handler(document []byte, options ...Option) http.Handler {
	c := config{
		contentType: "text/html; charset=utf-8",
		accessLog:   true,
	}
	for _, option := range options {
		option(&c)
	}

	var h http.Handler = &handler{document: document, config: c}
	mws := []middleware.Interface{middleware.RestrictMethod(http.MethodGet, http.MethodHead)}
	if c.accessLog {
		mws = append([]middleware.Interface{middleware.AccessLog()}, mws...)
	}
	return middleware.Chain(h, mws...)
}

type handler struct {
	document []byte
	config   config
}

func (h *handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r := h.config.resolver; r != nil {
		if _, ok := r.Resolve(navi.Normalize(req.URL.Path)); !ok {
			http.NotFound(w, req)
			return
		}
	}

	w.Header().Set("Content-Type", h.config.contentType)
	http.ServeContent(w, req, "", h.config.modTime, bytes.NewReader(h.document))
}
