// Package middleware holds the HTTP middlewares used by the shell server.
package middleware

import "net/http"

type Interface interface {
	Wrap(http.Handler) http.Handler
}

// Chain wraps h so that the first middleware is the outermost.
func Chain(h http.Handler, middlewares ...Interface) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i].Wrap(h)
	}
	return h
}
