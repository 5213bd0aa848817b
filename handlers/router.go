package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// NewRouter mounts the family API under /api with the standard middleware stack.
func NewRouter(fh *FamilyHandler, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", fh.Health)
		r.Get("/roots", fh.ListRoots)
		r.Route("/persons", func(r chi.Router) {
			r.Get("/", fh.ListPersons)
			r.Get("/{person_id}", fh.GetPerson)
		})
		r.Get("/subtree", fh.GetSubtree)
		r.Get("/timeline", fh.GetTimeline)
	})

	return r
}
