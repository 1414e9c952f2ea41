package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetupDisabledWithoutEndpoint(t *testing.T) {
	t.Parallel()

	tr, err := Setup(context.Background(), Options{})
	require.NoError(t, err)
	require.Nil(t, tr)
	require.False(t, tr.Enabled())
	require.NoError(t, tr.Shutdown(context.Background()))
}

// collector counts OTLP trace exports.
func collector(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/v1/traces" {
			hits.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

// Setup swaps the global tracer provider, so these run serially.
func TestSetupExportsToCollector(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	tests := []struct {
		name     string
		endpoint func(base string) string
	}{
		{name: "base url", endpoint: func(base string) string { return base }},
		{name: "base url with slash", endpoint: func(base string) string { return base + "/" }},
		{name: "full traces url", endpoint: func(base string) string { return base + "/v1/traces" }},
		{name: "host and port", endpoint: func(base string) string { return strings.TrimPrefix(base, "http://") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, hits := collector(t)
			ctx := context.Background()

			tr, err := Setup(ctx, Options{Endpoint: tt.endpoint(srv.URL), Version: "test"})
			require.NoError(t, err)
			require.True(t, tr.Enabled())

			_, span := otel.Tracer("folio-test").Start(ctx, "compose")
			span.End()

			require.NoError(t, tr.Shutdown(ctx))
			require.GreaterOrEqual(t, hits.Load(), int32(1))
		})
	}
}

func TestSetupRejectsBadEndpoint(t *testing.T) {
	t.Parallel()

	for _, endpoint := range []string{"grpc://collector:4317", "http://[::1"} {
		_, err := endpointOptions(endpoint)
		require.Error(t, err, endpoint)
	}
}

func TestMiddlewareRecordsSpans(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	r := gin.New()
	r.Use(Middleware(tp))
	r.GET("/s/:session/mode", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/s/abc/mode", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	require.Equal(t, "GET /s/:session/mode", spans[0].Name())
	require.Contains(t, spans[0].Attributes(), attribute.String("http.route", "/s/:session/mode"))
	require.Contains(t, spans[0].Attributes(), attribute.Int("http.status_code", http.StatusOK))
	require.Equal(t, codes.Unset, spans[0].Status().Code)

	require.Equal(t, "GET /boom", spans[1].Name())
	require.Equal(t, codes.Error, spans[1].Status().Code)
}
