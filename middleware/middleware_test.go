package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lestrrat-go/navi/middleware"
	"github.com/stretchr/testify/require"
)

func TestRestrictMethod(t *testing.T) {
	h := middleware.RestrictMethod(http.MethodGet, http.MethodHead).Wrap(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	testcases := []struct {
		Method string
		Status int
	}{
		{Method: http.MethodGet, Status: http.StatusOK},
		{Method: http.MethodHead, Status: http.StatusOK},
		{Method: http.MethodPost, Status: http.StatusMethodNotAllowed},
		{Method: http.MethodDelete, Status: http.StatusMethodNotAllowed},
	}
	for _, tc := range testcases {
		t.Run(fmt.Sprintf("method = %s", tc.Method), func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tc.Method, "/", nil))
			require.Equal(t, tc.Status, rec.Code)
			if tc.Status == http.StatusMethodNotAllowed {
				require.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
			}
		})
	}
}

type tag string

func (s tag) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("X-Order", string(s))
		next.ServeHTTP(w, r)
	})
}

func TestChain(t *testing.T) {
	h := middleware.Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Add("X-Order", "handler")
	}), tag("outer"), tag("inner"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, rec.Header().Values("X-Order"))
}
