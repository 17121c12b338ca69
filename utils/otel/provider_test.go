package otel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/resource"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "")
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_TRACE_SAMPLE_RATIO", "")

	cfg := ConfigFromEnv()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "feed-composer", cfg.ServiceName)
	assert.Equal(t, "http://localhost:4318", cfg.OTLPEndpoint)
	assert.Equal(t, 0.1, cfg.SampleRatio)
}

func TestInitProvider_Disabled(t *testing.T) {
	shutdown, err := InitProvider(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestMeterProviderExportsToConfiguredEndpoint(t *testing.T) {
	received := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case received <- r.URL.Path:
		default:
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx := context.Background()
	res, err := resource.New(ctx)
	require.NoError(t, err)

	cfg := Config{
		ServiceName:  "feed-composer",
		OTLPEndpoint: server.URL,
		Enabled:      true,
	}

	mp, err := initMeterProvider(ctx, cfg, res)
	require.NoError(t, err)
	defer func() { _ = mp.Shutdown(ctx) }()

	counter, err := mp.Meter("endpoint-check").Int64Counter("endpoint_check_total")
	require.NoError(t, err)
	counter.Add(ctx, 1)

	// A flush must land on the OTLP metrics path of the configured
	// endpoint; a malformed endpoint surfaces here as a flush error.
	require.NoError(t, mp.ForceFlush(ctx))

	select {
	case path := <-received:
		assert.Equal(t, "/v1/metrics", path)
	case <-time.After(5 * time.Second):
		t.Fatal("no metric export received")
	}
}
