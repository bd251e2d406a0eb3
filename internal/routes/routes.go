package routes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/janisto/huma-htmx/internal/htmx"
	appmiddleware "github.com/janisto/huma-htmx/internal/middleware"
	"github.com/janisto/huma-htmx/internal/respond"
)

// Register wires the huma operations into api. Errors use the shared envelope.
func Register(api huma.API) {
	respond.Install()
	registerHealth(api)
	registerItems(api)
	registerFragments(api)
}

// RegisterPartials mounts the htmx-only partials under /partials. mws run
// after the RequireHTMX guard.
func RegisterPartials(r chi.Router, mws ...func(http.Handler) http.Handler) {
	r.Route("/partials", func(r chi.Router) {
		r.Use(htmx.RequireHTMX())
		r.Use(mws...)
		r.Get("/greeting", greeting)
		r.Post("/items/{id}/select", selectItem)
		r.Get("/refresh", refresh)
	})
}

// HealthData models the success payload for the health route.
type HealthData struct {
	Message string `json:"message" doc:"Health status message" example:"healthy"`
}

// HealthOutput is the response wrapper for the health endpoint.
type HealthOutput struct {
	Body HealthData
}

func registerHealth(api huma.API) {
	huma.Get(api, "/health", func(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
		appmiddleware.LogInfo(ctx, "health check", zap.String("path", "/health"))
		return &HealthOutput{Body: HealthData{Message: "healthy"}}, nil
	})
}
