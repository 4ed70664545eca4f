package repository

import (
	"testing"
	"time"

	"ai_tutor_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func seedPath(t *testing.T, repo *PathRepository, learnerID string, resources []string) *model.LearningPath {
	t.Helper()
	p := &model.LearningPath{
		LearnerID: learnerID,
		Resources: datatypes.NewJSONSlice(resources),
		Progress:  datatypes.NewJSONType(map[string]model.OverallFeedback{}),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := repo.Create(p); err != nil {
		t.Fatalf("seed path: %v", err)
	}
	return p
}

func TestAdvanceRecordsProgress(t *testing.T) {
	repo := NewPathRepository(newTestDB(t))
	p := seedPath(t, repo, "learner-1", []string{"r1", "r2", "r3"})

	fb := model.OverallFeedback{AverageScore: 80, TotalQuestions: 3, CorrectAnswers: 2}
	require.NoError(t, repo.Advance(p.ID, "r1", 1, fb))

	stored, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CurrentPosition)
	got, ok := stored.Progress.Data()["r1"]
	require.True(t, ok)
	assert.Equal(t, float64(80), got.AverageScore)
}

func TestAdvanceMergesProgress(t *testing.T) {
	repo := NewPathRepository(newTestDB(t))
	p := seedPath(t, repo, "learner-1", []string{"r1", "r2", "r3"})

	require.NoError(t, repo.Advance(p.ID, "r1", 1, model.OverallFeedback{AverageScore: 70}))
	require.NoError(t, repo.Advance(p.ID, "r2", 2, model.OverallFeedback{AverageScore: 90}))

	stored, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.CurrentPosition)
	progress := stored.Progress.Data()
	require.Len(t, progress, 2)
	assert.Equal(t, float64(70), progress["r1"].AverageScore)
	assert.Equal(t, float64(90), progress["r2"].AverageScore)
}

func TestAdvanceMissingPath(t *testing.T) {
	repo := NewPathRepository(newTestDB(t))
	err := repo.Advance("missing", "r1", 1, model.OverallFeedback{})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindPathByLearner(t *testing.T) {
	repo := NewPathRepository(newTestDB(t))
	p := seedPath(t, repo, "learner-1", []string{"r1"})

	stored, err := repo.FindByLearner("learner-1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, stored.ID)

	_, err = repo.FindByLearner("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
