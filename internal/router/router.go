package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/roamplan/roamplan/internal/api/itinerary"
)

// Config contains the handlers the router wires up.
type Config struct {
	ItineraryHandler *itinerary.HandlerImpl
	MetricsHandler   http.Handler
	AllowedOrigins   []string
}

// SetupRouter builds the application router. Server-wide middleware
// (request ID, logging, recoverer) is applied by the caller before
// mounting this router.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/itineraries/generate", cfg.ItineraryHandler.GenerateItinerary)
	})

	return r
}
