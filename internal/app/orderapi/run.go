// Package orderapi boots the order registry HTTP service and its embedded
// Temporal worker.
package orderapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"

	userclient "github.com/Apurer/user-order-services/internal/clients/http/users"
	orderusers "github.com/Apurer/user-order-services/internal/domains/orders/adapters/external/users"
	orderhandler "github.com/Apurer/user-order-services/internal/domains/orders/adapters/http/handler"
	ordermemory "github.com/Apurer/user-order-services/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/user-order-services/internal/domains/orders/adapters/observability"
	orderworkflows "github.com/Apurer/user-order-services/internal/domains/orders/adapters/workflows"
	orderapp "github.com/Apurer/user-order-services/internal/domains/orders/application"
	orderdomain "github.com/Apurer/user-order-services/internal/domains/orders/domain"
	orderports "github.com/Apurer/user-order-services/internal/domains/orders/ports"
	"github.com/Apurer/user-order-services/internal/platform/httpserver"
	platformobservability "github.com/Apurer/user-order-services/internal/platform/observability"
	orderactivities "github.com/Apurer/user-order-services/internal/platform/temporal/activities/orders"
	temporalorders "github.com/Apurer/user-order-services/internal/platform/temporal/workflows/orders"
)

// ServiceName identifies the process in logs, traces and metrics.
const ServiceName = "order-service"

// Services holds the order service in both its bare and instrumented forms.
// Temporal activities run against Core, HTTP handlers against Instrumented.
type Services struct {
	Core         *orderapp.Service
	Instrumented orderports.Service
}

// Run boots the order service and blocks until ctx is canceled.
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
	logger := instruments.Logger

	services, err := NewServices(ctx, cfg, instruments)
	if err != nil {
		return err
	}

	var orchestrator orderports.CreationOrchestrator = orderworkflows.NewInlineOrderWorkflows(services.Instrumented)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, creating orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		taskQueue := temporalorders.InstanceTaskQueue(uuid.NewString())
		w := worker.New(temporalClient, taskQueue, worker.Options{})
		temporalorders.Register(w, orderactivities.NewActivities(services.Core))
		if err := w.Start(); err != nil {
			return fmt.Errorf("start order worker: %w", err)
		}
		defer w.Stop()
		orchestrator = orderworkflows.NewTemporalOrderWorkflows(temporalClient, taskQueue)
		logger.Info("Temporal workflows enabled",
			slog.String("namespace", cfg.TemporalNamespace),
			slog.String("taskQueue", taskQueue))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(instruments, services.Instrumented, orchestrator),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return httpserver.Serve(ctx, srv, logger)
}

// NewServices seeds the order store and connects it to the user registry at
// cfg.UserServiceURL.
func NewServices(ctx context.Context, cfg Config, instruments *platformobservability.Instruments) (Services, error) {
	logger := instruments.Logger
	client, err := userclient.NewClient(
		cfg.UserServiceURL,
		userclient.WithHTTPClient(userclient.NewHTTPClient(cfg.UserServiceTimeout)),
		userclient.WithLogger(logger),
	)
	if err != nil {
		return Services{}, fmt.Errorf("build user service client: %w", err)
	}

	repo := ordermemory.NewRepository()
	if err := repo.Seed(ctx, orderdomain.SampleOrders(time.Now())...); err != nil {
		return Services{}, fmt.Errorf("seed orders: %w", err)
	}
	core := orderapp.NewService(repo, orderusers.NewDirectory(client), orderapp.WithLogger(logger))
	instrumented := orderobs.New(
		core,
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	return Services{Core: core, Instrumented: instrumented}, nil
}

// NewRouter mounts the order routes on the shared service router.
func NewRouter(instruments *platformobservability.Instruments, service orderports.Service, orchestrator orderports.CreationOrchestrator) *gin.Engine {
	router := httpserver.NewRouter(httpserver.RouterConfig{
		ServiceName: ServiceName,
		Logger:      instruments.Logger,
		Registry:    instruments.Registry,
	})
	orderhandler.NewOrderAPI(service, orchestrator).Register(router.Group("/api/orders"))
	return router
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: instruments.Tracer("temporal-client"),
	})
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(instruments.Logger),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}
