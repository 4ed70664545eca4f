package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai_tutor_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(baseURL string) *GatewayService {
	return NewGatewayService(config.AIConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash",
	})
}

func TestGatewayGenerate(t *testing.T) {
	var captured generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"generated lesson"}]}}]}`))
	}))
	defer srv.Close()

	opts := DefaultOptions()
	opts.MaxOutputTokens = 500
	text, err := newGateway(srv.URL).Generate(context.Background(), "Explain limits", opts)
	require.NoError(t, err)
	assert.Equal(t, "generated lesson", text)

	require.Len(t, captured.Contents, 1)
	require.Len(t, captured.Contents[0].Parts, 1)
	assert.Equal(t, "Explain limits", captured.Contents[0].Parts[0].Text)
	assert.Equal(t, 0.7, captured.GenerationConfig.Temperature)
	assert.Equal(t, 500, captured.GenerationConfig.MaxOutputTokens)
	assert.Equal(t, 0.8, captured.GenerationConfig.TopP)
	assert.Equal(t, 40, captured.GenerationConfig.TopK)
}

func TestGatewayGenerateEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	// Safety-filtered responses come back with no candidates; that is not
	// an error, the caller treats empty text as a fallback trigger.
	text, err := newGateway(srv.URL).Generate(context.Background(), "prompt", DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGatewayGenerateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newGateway(srv.URL).Generate(context.Background(), "prompt", DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGatewayGenerateBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newGateway(srv.URL).Generate(context.Background(), "prompt", DefaultOptions())
	assert.Error(t, err)
}

func TestGatewayHealthy(t *testing.T) {
	assert.True(t, newGateway("http://example.com").Healthy())
	assert.False(t, NewGatewayService(config.AIConfig{}).Healthy())
}

func TestGatewayProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`))
	}))
	defer srv.Close()

	assert.True(t, newGateway(srv.URL).Probe(context.Background()))
	// An unconfigured gateway never hits the network.
	assert.False(t, NewGatewayService(config.AIConfig{BaseURL: srv.URL}).Probe(context.Background()))

	srv.Close()
	assert.False(t, newGateway(srv.URL).Probe(context.Background()))
}
