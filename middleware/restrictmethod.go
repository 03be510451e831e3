package middleware

import (
	"net/http"
	"strings"
)

// RestrictMethod returns a new middleware that restricts the HTTP methods
// accepted by the handler(s) downstream. Other methods get a 405 Method Not
// Allowed error with an Allow header listing the accepted methods.
func RestrictMethod(methods ...string) Interface {
	return &restrictMethodBuilder{methods: methods}
}

type restrictMethodBuilder struct {
	methods []string
}

func (m *restrictMethodBuilder) Wrap(h http.Handler) http.Handler {
	return restrictMethod{next: h, methods: m.methods}
}

type restrictMethod struct {
	next    http.Handler
	methods []string
}

func (m restrictMethod) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for _, method := range m.methods {
		if r.Method == method {
			m.next.ServeHTTP(w, r)
			return
		}
	}
	w.Header().Set("Allow", strings.Join(m.methods, ", "))
	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}
