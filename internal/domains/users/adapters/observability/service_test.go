package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Apurer/user-order-services/internal/domains/users/adapters/memory"
	"github.com/Apurer/user-order-services/internal/domains/users/application"
	"github.com/Apurer/user-order-services/internal/domains/users/domain"
)

func newInstrumented(t *testing.T) (*tracetest.SpanRecorder, *sdkmetric.ManualReader, *Service) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	repo := memory.NewRepository()
	require.NoError(t, repo.Seed(context.Background(), domain.SampleUsers()...))
	svc := New(application.NewService(repo), WithTracer(tp.Tracer("test")), WithMeter(mp.Meter("test")))
	return recorder, reader, svc.(*Service)
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

func TestService_RecordsCreateAndDelete(t *testing.T) {
	recorder, reader, svc := newInstrumented(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, domain.NewUser(0, "alice", "alice@example.com", "Alice"))
	require.NoError(t, err)
	removed, err := svc.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, removed)
	removed, err = svc.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, removed)

	require.Equal(t, int64(1), counterValue(t, reader, "users.service.created"))
	require.Equal(t, int64(1), counterValue(t, reader, "users.service.deleted"))

	spans := recorder.Ended()
	require.Len(t, spans, 3)
	require.Equal(t, "UserService.CreateUser", spans[0].Name())
	require.Equal(t, "UserService.DeleteUser", spans[1].Name())
}

type failingService struct {
	*application.Service
}

func (failingService) ListUsers(context.Context) ([]*domain.User, error) {
	return nil, errors.New("boom")
}

func TestService_MarksSpanOnError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	svc := New(failingService{}, WithTracer(tp.Tracer("test")))

	_, err := svc.ListUsers(context.Background())
	require.EqualError(t, err, "boom")

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, codes.Error, spans[0].Status().Code)
}
