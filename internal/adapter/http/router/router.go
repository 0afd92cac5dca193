package router

import "net/http"

type RateRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

type StaticRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

// New assembles the mux. The static registrar claims "/", so it must stay a
// catch-all behind the more specific API routes.
func New(rateController RateRouteRegistrar, staticController StaticRouteRegistrar) *http.ServeMux {
	mux := http.NewServeMux()

	if rateController != nil {
		rateController.RegisterRoutes(mux)
	}
	if staticController != nil {
		staticController.RegisterRoutes(mux)
	}

	return mux
}
