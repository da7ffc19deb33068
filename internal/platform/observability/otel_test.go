package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInit_WiresLoggerTracerAndRegistry(t *testing.T) {
	var logs bytes.Buffer
	exporter := tracetest.NewInMemoryExporter()
	instruments, shutdown, err := Init(context.Background(), "order-service",
		WithLogWriter(&logs), WithSpanExporter(exporter), WithoutGlobals())
	require.NoError(t, err)

	instruments.Logger.Info("hello", slog.Int64("order.id", 7))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "order-service", entry["service"])
	assert.Equal(t, float64(7), entry["order.id"])

	_, span := instruments.Tracer("test").Start(context.Background(), "unit")
	span.End()
	provider, ok := instruments.TracerProvider.(*sdktrace.TracerProvider)
	require.True(t, ok)
	require.NoError(t, provider.ForceFlush(context.Background()))
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "unit", spans[0].Name)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	families, err := instruments.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestInit_ExportsMeterCountersToRegistry(t *testing.T) {
	instruments, shutdown, err := Init(context.Background(), "order-service",
		WithLogWriter(io.Discard), WithSpanExporter(tracetest.NewInMemoryExporter()), WithoutGlobals())
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	counter, err := instruments.Meter("internal.orders.application").Int64Counter("orders.service.created")
	require.NoError(t, err)
	counter.Add(context.Background(), 2)

	families, err := instruments.Registry.Gather()
	require.NoError(t, err)
	var total float64
	found := false
	for _, family := range families {
		if family.GetName() != "orders_service_created_total" {
			continue
		}
		found = true
		for _, m := range family.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	require.True(t, found, "counter family missing from registry")
	assert.Equal(t, float64(2), total)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("chatty"))
}

func TestNilInstrumentsFallBack(t *testing.T) {
	var instruments *Instruments
	assert.NotNil(t, instruments.Tracer("x"))
	assert.NotNil(t, instruments.Meter("x"))
}
