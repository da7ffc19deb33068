// Package userapi boots the user registry HTTP service.
package userapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	userhandler "github.com/Apurer/user-order-services/internal/domains/users/adapters/http/handler"
	usermemory "github.com/Apurer/user-order-services/internal/domains/users/adapters/memory"
	userobs "github.com/Apurer/user-order-services/internal/domains/users/adapters/observability"
	userapp "github.com/Apurer/user-order-services/internal/domains/users/application"
	userdomain "github.com/Apurer/user-order-services/internal/domains/users/domain"
	"github.com/Apurer/user-order-services/internal/platform/httpserver"
	platformobservability "github.com/Apurer/user-order-services/internal/platform/observability"
)

// ServiceName identifies the process in logs, traces and metrics.
const ServiceName = "user-service"

// Run boots the user service and blocks until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, ServiceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()

	router, err := NewRouter(ctx, instruments)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return httpserver.Serve(ctx, srv, instruments.Logger)
}

// NewRouter wires a freshly seeded user registry behind the HTTP surface.
func NewRouter(ctx context.Context, instruments *platformobservability.Instruments) (*gin.Engine, error) {
	repo := usermemory.NewRepository()
	if err := repo.Seed(ctx, userdomain.SampleUsers()...); err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}
	service := userobs.New(
		userapp.NewService(repo),
		userobs.WithLogger(instruments.Logger),
		userobs.WithTracer(instruments.Tracer("internal.users.application")),
		userobs.WithMeter(instruments.Meter("internal.users.application")),
	)

	router := httpserver.NewRouter(httpserver.RouterConfig{
		ServiceName: ServiceName,
		Logger:      instruments.Logger,
		Registry:    instruments.Registry,
	})
	userhandler.NewUserAPI(service).Register(router.Group("/api/users"))
	return router, nil
}
