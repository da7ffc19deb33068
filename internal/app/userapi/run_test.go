package userapi

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	platformobservability "github.com/Apurer/user-order-services/internal/platform/observability"
)

func TestNewRouter_ServesSeededUsers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	instruments, shutdown, err := platformobservability.Init(ctx, ServiceName,
		platformobservability.WithLogWriter(&bytes.Buffer{}),
		platformobservability.WithSpanExporter(tracetest.NewInMemoryExporter()),
		platformobservability.WithoutGlobals())
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(ctx) })

	router, err := NewRouter(ctx, instruments)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/3", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":3,"username":"bob_wilson","email":"bob@example.com","fullName":"Bob Wilson"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
