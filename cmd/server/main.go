package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/janisto/huma-htmx/internal/common"
	"github.com/janisto/huma-htmx/internal/config"
	"github.com/janisto/huma-htmx/internal/htmx"
	appmiddleware "github.com/janisto/huma-htmx/internal/middleware"
	"github.com/janisto/huma-htmx/internal/respond"
	"github.com/janisto/huma-htmx/internal/routes"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const (
	codeRateLimited = "TOO_MANY_REQUESTS"
	msgRateLimited  = "rate limit exceeded"
	shutdownTimeout = 10 * time.Second
)

func main() {
	defer func() {
		if err := common.Sync(); err != nil {
			appmiddleware.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := common.Err(); err != nil {
		appmiddleware.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		appmiddleware.LogError(context.Background(), "config load failed", err)
		os.Exit(1)
	}
	common.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, newServer(cfg)); err != nil {
		appmiddleware.LogError(context.Background(), "server failed", err)
		os.Exit(1)
	}
	appmiddleware.LogInfo(context.Background(), "server exited")
}

func newServer(cfg config.Config) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// run serves srv until ctx is cancelled, then shuts it down gracefully.
func run(ctx context.Context, srv *http.Server) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appmiddleware.LogInfo(gctx, "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appmiddleware.LogInfo(context.Background(), "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newRouter(cfg config.Config) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		appmiddleware.RequestLogger(),
		appmiddleware.AccessLogger(),
		respond.Recoverer(),
		htmx.AutoVary(cfg.AutoVary),
	)

	humaCfg := huma.DefaultConfig("Huma htmx API", Version)
	humaCfg.DocsPath = "/api-docs"
	api := humachi.New(router, humaCfg)
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContent)

	routes.Register(api)

	var partialMWs []func(http.Handler) http.Handler
	if cfg.RateLimit > 0 {
		partialMWs = append(partialMWs, appmiddleware.RateLimit(appmiddleware.RateLimitConfig{
			RequestLimit: cfg.RateLimit,
			WindowSize:   time.Minute,
			LimitHandler: rateLimited,
		}))
	}
	routes.RegisterPartials(router, partialMWs...)
	return router
}

// addCBORContent documents CBOR next to every JSON request and response body.
func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

func rateLimited(w http.ResponseWriter, r *http.Request) {
	if err := respond.WriteError(w, r.Context(), http.StatusTooManyRequests, codeRateLimited, msgRateLimited, nil); err != nil {
		appmiddleware.LogError(r.Context(), "failed to render rate limit", err)
	}
}
