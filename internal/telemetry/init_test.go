package telemetry

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	init := &InitOpenTelemetry{
		Logger:          log.New(&strings.Builder{}, "", 0),
		TracesEndpoint:  "-",
		MetricsEndpoint: "-",
	}
	ctx, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
	init.Close()
}

func TestInitOpenTelemetry_Initialize_WithEndpoints(t *testing.T) {
	init := &InitOpenTelemetry{
		Logger:          log.New(&strings.Builder{}, "", 0),
		TracesEndpoint:  "http://localhost:4318/v1/traces",
		MetricsEndpoint: "http://localhost:4318/v1/metrics",
	}
	_, err := init.Initialize(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, init.tp)
	assert.NotNil(t, init.mp)
	init.Close()
}

func TestInitHttpClient_Initialize(t *testing.T) {
	init := InitHttpClient{Logger: log.New(&strings.Builder{}, "", 0), RetryMax: 1}
	ctx, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	client, err := depend.Resolve[*http.Client]()
	assert.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewHttpClient_Retries(t *testing.T) {
	tests := map[string]struct {
		status        int
		expectedCalls int32
	}{
		"retries-unavailable": {
			status:        http.StatusServiceUnavailable,
			expectedCalls: 2,
		},
		"does-not-retry-internal-error": {
			status:        http.StatusInternalServerError,
			expectedCalls: 1,
		},
		"does-not-retry-success": {
			status:        http.StatusOK,
			expectedCalls: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := NewHttpClient(log.New(&strings.Builder{}, "", 0), 1)
			resp, err := client.Get(srv.URL)
			if err == nil {
				resp.Body.Close() //nolint:errcheck
			}
			assert.Equal(t, tt.expectedCalls, calls.Load())
		})
	}
}

func TestDontRetry500StatusPolicy(t *testing.T) {
	alwaysRetry := func(context.Context, *http.Response, error) (bool, error) { return true, nil }
	policy := dontRetry500StatusPolicy(alwaysRetry)

	retry, err := policy(context.Background(), nil, errors.New("connection reset"))
	require.NoError(t, err)
	assert.True(t, retry)

	retry, _ = policy(context.Background(), &http.Response{StatusCode: http.StatusInternalServerError}, nil)
	assert.False(t, retry)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	retry, err = policy(ctx, nil, nil)
	assert.False(t, retry)
	assert.ErrorIs(t, err, context.Canceled)
}
