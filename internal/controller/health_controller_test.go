package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"ai_tutor_backend/internal/config"
	"ai_tutor_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthSkipsProbeWithoutAPIKey(t *testing.T) {
	var upstreamCalls int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt64(&upstreamCalls, 1)
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`))
	}))
	defer upstream.Close()

	gateway := service.NewGatewayService(config.AIConfig{BaseURL: upstream.URL, Model: "gemini-2.0-flash"})
	ctrl := NewHealthController(newControllerDB(t), nil, gateway, "gemini-2.0-flash")
	router := gin.New()
	router.GET("/api/health", ctrl.Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status      string `json:"status"`
		Database    bool   `json:"database"`
		Redis       bool   `json:"redis"`
		AIConnected bool   `json:"ai_connected"`
		AIModel     string `json:"ai_model"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.True(t, resp.Database)
	assert.False(t, resp.Redis)
	assert.False(t, resp.AIConnected)
	assert.Equal(t, "gemini-2.0-flash", resp.AIModel)
	// No key configured, so the upstream was never probed.
	assert.Equal(t, int64(0), atomic.LoadInt64(&upstreamCalls))
}

func TestHealthProbesConfiguredGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`))
	}))
	defer upstream.Close()

	gateway := service.NewGatewayService(config.AIConfig{BaseURL: upstream.URL, APIKey: "test-key", Model: "gemini-2.0-flash"})
	ctrl := NewHealthController(newControllerDB(t), nil, gateway, "gemini-2.0-flash")
	router := gin.New()
	router.GET("/api/health", ctrl.Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		AIConnected bool `json:"ai_connected"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.AIConnected)
}
