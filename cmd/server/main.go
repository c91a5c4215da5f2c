package main

import (
	"context"
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
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vanityhq/vanity-api/internal/http/health"
	"github.com/vanityhq/vanity-api/internal/http/v1/routes"
	"github.com/vanityhq/vanity-api/internal/platform/auth"
	"github.com/vanityhq/vanity-api/internal/platform/firebase"
	applog "github.com/vanityhq/vanity-api/internal/platform/logging"
	appmiddleware "github.com/vanityhq/vanity-api/internal/platform/middleware"
	"github.com/vanityhq/vanity-api/internal/platform/respond"
	"github.com/vanityhq/vanity-api/internal/service/account"
	profilesvc "github.com/vanityhq/vanity-api/internal/service/profile"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	// Local development reads FIREBASE_PROJECT_ID and friends from .env;
	// deployed environments set them directly.
	_ = godotenv.Load()

	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	ctx := context.Background()
	clients, err := firebase.InitializeClients(ctx, firebase.ConfigFromEnv())
	if err != nil {
		applog.LogError(ctx, "firebase initialization failed", err)
		os.Exit(1)
	}
	defer func() {
		if err := clients.Close(); err != nil {
			applog.LogError(context.Background(), "firebase client close error", err)
		}
	}()

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
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		// RequestSize limits request body size to prevent memory exhaustion from large payloads.
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		appmiddleware.NewRateLimiter().Handler(),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler)

	cfg := huma.DefaultConfig("Vanity API", Version)
	cfg.DocsPath = "/api-docs"
	cfg.Servers = []*huma.Server{{URL: "/v1"}}

	v1 := chi.NewRouter()
	router.Mount("/v1", v1)
	api := humachi.New(v1, cfg)

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
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
		},
	)

	verifier := auth.NewFirebaseVerifier(clients.Auth)
	profileService := profilesvc.NewService(profilesvc.NewFirestoreStore(clients.Firestore))
	accountService := account.NewFirebaseService(clients.Auth)

	routes.Register(api, verifier, profileService, accountService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}
