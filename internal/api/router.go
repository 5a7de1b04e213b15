package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/sleep-calculator/docs"
	"github.com/blaisecz/sleep-calculator/internal/api/handler"
	"github.com/blaisecz/sleep-calculator/internal/api/middleware"
	"github.com/blaisecz/sleep-calculator/pkg/problem"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	wakeTimeHandler *handler.WakeTimeHandler
}

func NewRouter(wakeTimeHandler *handler.WakeTimeHandler) *Router {
	return &Router{
		wakeTimeHandler: wakeTimeHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	r.NotFound(problem.NotFoundHandler)
	r.MethodNotAllowed(problem.MethodNotAllowedHandler)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Post("/wake-times", rt.wakeTimeHandler.Calculate)
		r.Get("/wake-times", rt.wakeTimeHandler.Lookup)
	})

	return r
}
