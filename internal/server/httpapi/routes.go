package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Routes builds the API handler.
//
//	GET  /             service banner
//	GET  /health       liveness probe
//	POST /auth/signup  create account, returns a token
//	POST /auth/login   returns a token
//	GET  /users/me     current user (bearer token)
//	PUT  /users/me     partial profile update via query parameters (bearer token)
func (s *HTTPServer) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(s.withRequestLogging)

	r.Get("/", s.root)
	r.Get("/health", s.health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", s.signup)
		r.Post("/login", s.login)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.bearerAuth)
		r.Get("/users/me", s.getProfile)
		r.Put("/users/me", s.updateProfile)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return r
}
