package portalsim

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)

	// the single protocol route of the campus gateway
	router.Post("/httpclient.html", h.login)

	router.MethodNotAllowed(checkHTTPMethod(router))

	return router
}

// checkHTTPMethod overrides chi's default 405 response: a request whose path
// matches a registered route but whose method does not answers 404 instead,
// the same way the gateway hides its endpoint from probing.
func checkHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
