package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	orderdomain "github.com/Apurer/user-order-services/internal/domains/orders/domain"
	orderports "github.com/Apurer/user-order-services/internal/domains/orders/ports"
	"github.com/Apurer/user-order-services/internal/shared/option"
)

const tracerName = "github.com/Apurer/user-order-services/internal/domains/orders/adapters/observability/service"

// Service decorates the order service with tracing, logging, and metrics.
type Service struct {
	inner   orderports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

func New(inner orderports.Service, opts ...Option) orderports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

func (s *Service) ListOrders(ctx context.Context) ([]*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders")
	defer span.End()
	result, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.count", len(result)))
	return result, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (option.Option[*orderdomain.Order], error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()
	result, err := s.inner.GetOrder(ctx, id)
	if err != nil {
		return result, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", id))
	}
	span.SetAttributes(attribute.Bool("order.found", result.IsPresent()))
	return result, nil
}

func (s *Service) ListOrdersByUser(ctx context.Context, userID int64) ([]*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrdersByUser", trace.WithAttributes(attribute.Int64("user.id", userID)))
	defer span.End()
	result, err := s.inner.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list user orders", slog.Int64("user.id", userID))
	}
	span.SetAttributes(attribute.Int("order.count", len(result)))
	return result, nil
}

func (s *Service) CreateOrder(ctx context.Context, order *orderdomain.Order) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.CreateOrder")
	defer span.End()
	if order != nil {
		span.SetAttributes(attribute.Int64("user.id", order.UserID))
		s.logger.LogAttrs(ctx, slog.LevelInfo, "creating order",
			slog.Int64("user.id", order.UserID), slog.String("product", order.ProductName))
	}
	result, err := s.inner.CreateOrder(ctx, order)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create order")
	}
	span.SetAttributes(attribute.Int64("order.id", result.ID))
	s.metrics.recordCreated(ctx)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "order created", slog.Int64("order.id", result.ID))
	return result, nil
}

func (s *Service) UpdateOrder(ctx context.Context, id int64, patch *orderdomain.Order) (option.Option[*orderdomain.Order], error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.UpdateOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()
	result, err := s.inner.UpdateOrder(ctx, id, patch)
	if err != nil {
		return result, s.handleError(ctx, span, err, "failed to update order", slog.Int64("order.id", id))
	}
	if result.IsPresent() {
		s.metrics.recordUpdated(ctx)
	}
	span.SetAttributes(attribute.Bool("order.found", result.IsPresent()))
	return result, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.DeleteOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()
	removed, err := s.inner.DeleteOrder(ctx, id)
	if err != nil {
		return false, s.handleError(ctx, span, err, "failed to delete order", slog.Int64("order.id", id))
	}
	if removed {
		s.metrics.recordDeleted(ctx)
	}
	span.SetAttributes(attribute.Bool("order.removed", removed))
	return removed, nil
}

func (s *Service) GetOrderWithUser(ctx context.Context, id int64) (option.Option[orderdomain.OrderWithUser], error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrderWithUser", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()
	result, err := s.inner.GetOrderWithUser(ctx, id)
	if err != nil {
		return result, s.handleError(ctx, span, err, "failed to load enriched order", slog.Int64("order.id", id))
	}
	if pair, ok := result.Get(); ok {
		span.SetAttributes(attribute.Bool("order.user_resolved", pair.User.IsPresent()))
	}
	span.SetAttributes(attribute.Bool("order.found", result.IsPresent()))
	return result, nil
}

func (s *Service) ListOrdersWithUsers(ctx context.Context) ([]orderdomain.OrderWithUser, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrdersWithUsers")
	defer span.End()
	result, err := s.inner.ListOrdersWithUsers(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list enriched orders")
	}
	unresolved := 0
	for _, pair := range result {
		if !pair.User.IsPresent() {
			unresolved++
		}
	}
	span.SetAttributes(attribute.Int("order.count", len(result)), attribute.Int("order.users_unresolved", unresolved))
	return result, nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	attrs = append(attrs, slog.String("error", err.Error()))
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	return err
}

type serviceMetrics struct {
	ordersCreated metric.Int64Counter
	ordersUpdated metric.Int64Counter
	ordersDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("orders.service.created", metric.WithDescription("Number of orders created"))
	updated, _ := m.Int64Counter("orders.service.updated", metric.WithDescription("Number of orders updated"))
	deleted, _ := m.Int64Counter("orders.service.deleted", metric.WithDescription("Number of orders deleted"))
	return serviceMetrics{ordersCreated: created, ordersUpdated: updated, ordersDeleted: deleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.ordersCreated != nil {
		m.ordersCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordUpdated(ctx context.Context) {
	if m.ordersUpdated != nil {
		m.ordersUpdated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.ordersDeleted != nil {
		m.ordersDeleted.Add(ctx, 1)
	}
}

var _ orderports.Service = (*Service)(nil)
