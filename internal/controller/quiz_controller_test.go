package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai_tutor_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitPretestResponseIncludesWeakAreas(t *testing.T) {
	quizzes, profile := newQuizService(t, newControllerDB(t))
	pretest, err := quizzes.StartPretest(context.Background(), profile.ID, "algebra")
	require.NoError(t, err)

	ctrl := NewQuizController(nil, quizzes)
	router := gin.New()
	router.POST("/api/pretest/:pretest_id/submit", ctrl.SubmitPretest)

	// Answer everything wrong so every topic lands in the weak areas.
	answers := map[string]string{}
	for _, q := range pretest.Questions {
		answers[q.ID] = "wrong"
	}
	body, err := json.Marshal(gin.H{"answers": answers})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/pretest/"+pretest.ID+"/submit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success         bool                  `json:"success"`
		Results         []model.EvalResult    `json:"results"`
		OverallFeedback model.OverallFeedback `json:"overall_feedback"`
		WeakAreas       []string              `json:"weak_areas"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Results, 5)
	assert.Equal(t, float64(0), resp.OverallFeedback.AverageScore)
	assert.NotEmpty(t, resp.WeakAreas)
}

func TestSubmitPretestMissing(t *testing.T) {
	quizzes, _ := newQuizService(t, newControllerDB(t))

	ctrl := NewQuizController(nil, quizzes)
	router := gin.New()
	router.POST("/api/pretest/:pretest_id/submit", ctrl.SubmitPretest)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/pretest/missing/submit", bytes.NewReader([]byte(`{"answers":{}}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}
