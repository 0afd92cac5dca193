package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/api-sage/currency-converter/internal/adapter/http/router"
)

type registrarStub struct {
	pattern string
	label   string
}

func (s registrarStub) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle(s.pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(s.label))
	}))
}

func TestRouterAPITakesPrecedenceOverStatic(t *testing.T) {
	mux := router.New(
		registrarStub{pattern: "/api/rates", label: "rates"},
		registrarStub{pattern: "/", label: "static"},
	)

	cases := map[string]string{
		"/api/rates": "rates",
		"/index.css": "static",
		"/":          "static",
	}

	for path, want := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		if rr.Body.String() != want {
			t.Fatalf("%s: expected %q handler, got %q", path, want, rr.Body.String())
		}
	}
}

func TestRouterToleratesNilRegistrars(t *testing.T) {
	mux := router.New(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected bare mux 404, got %d", rr.Code)
	}
}
