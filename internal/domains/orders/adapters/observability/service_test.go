package observability

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Apurer/user-order-services/internal/domains/orders/adapters/memory"
	"github.com/Apurer/user-order-services/internal/domains/orders/application"
	"github.com/Apurer/user-order-services/internal/domains/orders/domain"
	"github.com/Apurer/user-order-services/internal/domains/orders/ports/portsmock"
	"github.com/Apurer/user-order-services/internal/shared/option"
)

type fixture struct {
	recorder  *tracetest.SpanRecorder
	reader    *sdkmetric.ManualReader
	directory *portsmock.MockUserDirectory
	svc       *Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	directory := portsmock.NewMockUserDirectory(gomock.NewController(t))
	repo := memory.NewRepository()
	require.NoError(t, repo.Seed(context.Background(), domain.SampleOrders(time.Now())...))
	svc := New(application.NewService(repo, directory), WithTracer(tp.Tracer("test")), WithMeter(mp.Meter("test")))
	return fixture{recorder: recorder, reader: reader, directory: directory, svc: svc.(*Service)}
}

func counterValue(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			return total
		}
	}
	return 0
}

func TestService_CountsSuccessfulCreateOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.directory.EXPECT().FetchUser(gomock.Any(), int64(1)).Return(option.Some(domain.UserSnapshot{ID: 1}))
	f.directory.EXPECT().FetchUser(gomock.Any(), int64(999)).Return(option.None[domain.UserSnapshot]())

	_, err := f.svc.CreateOrder(ctx, &domain.Order{UserID: 1, ProductName: "Monitor", Quantity: 1, TotalAmount: decimal.RequireFromString("199.99")})
	require.NoError(t, err)
	_, err = f.svc.CreateOrder(ctx, &domain.Order{UserID: 999, ProductName: "Monitor", Quantity: 1})
	require.ErrorIs(t, err, application.ErrUserNotFound)

	assert.Equal(t, int64(1), counterValue(t, f.reader, "orders.service.created"))

	spans := f.recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestService_CountsUpdatesAndDeletesThatHit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.UpdateOrder(ctx, 1, &domain.Order{ProductName: "Laptop Pro", Quantity: 1, Status: "COMPLETED"})
	require.NoError(t, err)
	_, err = f.svc.UpdateOrder(ctx, 99, &domain.Order{ProductName: "Ghost"})
	require.NoError(t, err)
	_, err = f.svc.DeleteOrder(ctx, 1)
	require.NoError(t, err)
	_, err = f.svc.DeleteOrder(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), counterValue(t, f.reader, "orders.service.updated"))
	assert.Equal(t, int64(1), counterValue(t, f.reader, "orders.service.deleted"))
}

func TestService_EnrichmentSpans(t *testing.T) {
	f := newFixture(t)
	f.directory.EXPECT().FetchUser(gomock.Any(), gomock.Any()).Return(option.None[domain.UserSnapshot]()).Times(3)

	result, err := f.svc.ListOrdersWithUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 3)

	spans := f.recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "OrderService.ListOrdersWithUsers", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}
