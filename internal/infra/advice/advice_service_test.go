package advice

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pureflow/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAdviceLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func adviceConfig(endpoint string) *config.Config {
	return &config.Config{
		Advice: &config.AdviceConfig{
			Endpoint: endpoint,
			APIKey:   "test-key",
			Model:    "test-model",
			Timeout:  5 * time.Second,
		},
	}
}

func TestGetWaterAdvice_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.Equal(t, "Is RO water safe for infants?", req.Prompt)
		assert.NotEmpty(t, req.System)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"text": "Yes, RO water is safe when remineralized.",
			"sources": []map[string]string{
				{"title": "WHO guidelines", "uri": "https://who.int/water"},
				{"title": "untitled", "uri": ""},
			},
		})
	}))
	defer server.Close()

	svc := NewAdviceService(adviceConfig(server.URL), testAdviceLogger())

	advice := svc.GetWaterAdvice(context.Background(), "Is RO water safe for infants?")

	assert.Equal(t, "Yes, RO water is safe when remineralized.", advice.Text)
	// Sources without a URI are dropped.
	require.Len(t, advice.Sources, 1)
	assert.Equal(t, "https://who.int/water", advice.Sources[0].URI)
}

func TestGetWaterAdvice_ServerErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewAdviceService(adviceConfig(server.URL), testAdviceLogger())

	advice := svc.GetWaterAdvice(context.Background(), "hello")

	assert.Equal(t, fallbackText, advice.Text)
	assert.Empty(t, advice.Sources)
}

func TestGetWaterAdvice_UnreachableEndpointFallsBack(t *testing.T) {
	svc := NewAdviceService(adviceConfig("http://127.0.0.1:1"), testAdviceLogger())

	advice := svc.GetWaterAdvice(context.Background(), "hello")

	assert.Equal(t, fallbackText, advice.Text)
}

func TestGetWaterAdvice_UnconfiguredReturnsApology(t *testing.T) {
	svc := NewAdviceService(&config.Config{}, testAdviceLogger())

	advice := svc.GetWaterAdvice(context.Background(), "hello")

	assert.Equal(t, fallbackText, advice.Text)
	assert.NotNil(t, advice.Sources)
}

func TestGetWaterAdvice_EmptyTextGetsPlaceholder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"text": "", "sources": []}`))
	}))
	defer server.Close()

	svc := NewAdviceService(adviceConfig(server.URL), testAdviceLogger())

	advice := svc.GetWaterAdvice(context.Background(), "hello")

	assert.Equal(t, "I couldn't process that. Please try again.", advice.Text)
}
