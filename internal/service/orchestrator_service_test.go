package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/internal/repository"
	"ai_tutor_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type orchestratorFixture struct {
	svc          *OrchestratorService
	profileRepo  *repository.ProfileRepository
	pathRepo     *repository.PathRepository
	resourceRepo *repository.ResourceRepository
	quizRepo     *repository.QuizRepository
	db           *gorm.DB
}

func newOrchestratorFixture(t *testing.T, gen TextGenerator) *orchestratorFixture {
	db := newTestDB(t)
	profileRepo := repository.NewProfileRepository(db)
	pathRepo := repository.NewPathRepository(db)
	resourceRepo := repository.NewResourceRepository(db, nil)
	quizRepo := repository.NewQuizRepository(db)

	cfg := testPipeline()
	content := NewContentService(gen, resourceRepo, cfg)
	pathSvc := NewPathService(gen, content, resourceRepo, pathRepo, cfg)
	evaluator := NewEvaluatorService(replies(fakeReply{err: errors.New("down")}))

	svc := NewOrchestratorService(profileRepo, pathRepo, resourceRepo, quizRepo, pathSvc, content, evaluator, cfg)
	return &orchestratorFixture{
		svc:          svc,
		profileRepo:  profileRepo,
		pathRepo:     pathRepo,
		resourceRepo: resourceRepo,
		quizRepo:     quizRepo,
		db:           db,
	}
}

func waitDone(t *testing.T, job *MaterializeJob) {
	t.Helper()
	select {
	case <-job.Done():
	case <-time.After(10 * time.Second):
		t.Fatal("materialization did not finish")
	}
}

func TestProcessNewLearner(t *testing.T) {
	// Generator is down; skeleton build is AI-free and materialization
	// falls back to the lesson bank.
	f := newOrchestratorFixture(t, replies(fakeReply{err: errors.New("down")}))

	result, job, err := f.svc.ProcessNewLearner(context.Background(), IntakeInput{
		Name:           "Ada",
		LearningStyle:  model.StyleVisual,
		KnowledgeLevel: 2,
		Subject:        "algebra",
		WeakAreas:      []string{"linear"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.ProfileID)
	assert.NotEmpty(t, result.PathID)
	assert.Len(t, result.InitialResources, 3)
	assert.Equal(t, "generating_content", result.Status)

	profile, err := f.profileRepo.FindByID(result.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Name)
	assert.Equal(t, 2, profile.KnowledgeLevel)

	waitDone(t, job)
	require.NoError(t, job.Err())

	path, err := f.pathRepo.FindByID(result.PathID)
	require.NoError(t, err)
	for _, id := range path.Resources {
		res, err := f.resourceRepo.FindByID(id)
		require.NoError(t, err)
		assert.Equal(t, model.ResourceReady, res.Status)
		assert.NotContains(t, res.Content, "Loading comprehensive content")
	}

	// Weak area moved its topic to the front.
	first, err := f.resourceRepo.FindByID(path.Resources[0])
	require.NoError(t, err)
	assert.Equal(t, "Linear Equations", first.Topic)
}

func TestProcessNewLearnerClampsKnowledgeLevel(t *testing.T) {
	f := newOrchestratorFixture(t, replies(fakeReply{err: errors.New("down")}))

	result, job, err := f.svc.ProcessNewLearner(context.Background(), IntakeInput{
		Name:           "Bo",
		LearningStyle:  model.StyleReading,
		KnowledgeLevel: 9,
		Subject:        "geometry",
	})
	require.NoError(t, err)
	waitDone(t, job)

	profile, err := f.profileRepo.FindByID(result.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, 5, profile.KnowledgeLevel)

	// Missing level defaults to 1.
	result, job, err = f.svc.ProcessNewLearner(context.Background(), IntakeInput{
		Name:          "Cy",
		LearningStyle: model.StyleReading,
		Subject:       "algebra",
	})
	require.NoError(t, err)
	waitDone(t, job)
	profile, err = f.profileRepo.FindByID(result.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.KnowledgeLevel)
}

func TestFlexIntUnmarshal(t *testing.T) {
	var input IntakeInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","learning_style":"visual","subject":"algebra","knowledge_level":3}`), &input))
	assert.Equal(t, FlexInt(3), input.KnowledgeLevel)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","learning_style":"visual","subject":"algebra","knowledge_level":"4"}`), &input))
	assert.Equal(t, FlexInt(4), input.KnowledgeLevel)

	input = IntakeInput{}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","learning_style":"visual","subject":"algebra","knowledge_level":"lots"}`), &input))
	assert.Equal(t, FlexInt(0), input.KnowledgeLevel)
}

func TestFlexStringListUnmarshal(t *testing.T) {
	var input IntakeInput
	require.NoError(t, json.Unmarshal([]byte(`{"weak_areas":["linear equations","fractions"]}`), &input))
	assert.Equal(t, FlexStringList{"linear equations", "fractions"}, input.WeakAreas)

	// A bare string instead of a list is tolerated and treated as empty.
	require.NoError(t, json.Unmarshal([]byte(`{"weak_areas":"linear equations"}`), &input))
	assert.Empty(t, input.WeakAreas)

	require.NoError(t, json.Unmarshal([]byte(`{"weak_areas":42}`), &input))
	assert.Empty(t, input.WeakAreas)
}

func TestMaterializationIsIdempotent(t *testing.T) {
	f := newOrchestratorFixture(t, replies(fakeReply{err: errors.New("down")}))

	result, job, err := f.svc.ProcessNewLearner(context.Background(), IntakeInput{
		Name:           "Dee",
		LearningStyle:  model.StyleReading,
		KnowledgeLevel: 1,
		Subject:        "calculus",
	})
	require.NoError(t, err)
	waitDone(t, job)

	// A second run over the same path finds nothing left to generate.
	again := f.svc.StartMaterialization(result.PathID)
	waitDone(t, again)
	require.NoError(t, again.Err())

	generating, err := f.resourceRepo.CountByStatus(model.ResourceGenerating)
	require.NoError(t, err)
	assert.Zero(t, generating)
}

func TestMaterializationCancel(t *testing.T) {
	gen := &blockingGenerator{started: make(chan struct{}, 16)}
	f := newOrchestratorFixture(t, gen)

	_, job, err := f.svc.ProcessNewLearner(context.Background(), IntakeInput{
		Name:           "Eve",
		LearningStyle:  model.StyleReading,
		KnowledgeLevel: 1,
		Subject:        "algebra",
	})
	require.NoError(t, err)

	// Wait for the first generation call, then cancel mid-run.
	select {
	case <-gen.started:
	case <-time.After(10 * time.Second):
		t.Fatal("generation never started")
	}
	job.Cancel()
	waitDone(t, job)
	assert.ErrorIs(t, job.Err(), context.Canceled)

	// Later resources were never touched.
	generating, err := f.resourceRepo.CountByStatus(model.ResourceGenerating)
	require.NoError(t, err)
	assert.Greater(t, generating, int64(0))
}

// blockingGenerator parks every call until its context is cancelled.
type blockingGenerator struct {
	started chan struct{}
}

func (b *blockingGenerator) Generate(ctx context.Context, _ string, _ GenerateOptions) (string, error) {
	b.started <- struct{}{}
	<-ctx.Done()
	return "", ctx.Err()
}

func seedQuiz(t *testing.T, f *orchestratorFixture, resourceID string) *model.Quiz {
	t.Helper()
	questions := bankQuestions("algebra", 2, 5)
	for i := range questions {
		questions[i].ResourceID = resourceID
	}
	quiz := &model.Quiz{
		ResourceID: resourceID,
		Questions:  datatypes.NewJSONSlice(questions),
		Status:     model.QuizActive,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, f.quizRepo.Create(quiz))
	return quiz
}

func intake(t *testing.T, f *orchestratorFixture) *IntakeResult {
	t.Helper()
	result, job, err := f.svc.ProcessNewLearner(context.Background(), IntakeInput{
		Name:           "Fay",
		LearningStyle:  model.StyleReading,
		KnowledgeLevel: 2,
		Subject:        "algebra",
	})
	require.NoError(t, err)
	waitDone(t, job)
	return result
}

func answersFor(questions []model.QuizQuestion, correct int) map[string]string {
	answers := map[string]string{}
	for i, q := range questions {
		if i < correct {
			answers[q.ID] = q.CorrectAnswer
		} else {
			answers[q.ID] = "wrong"
		}
	}
	return answers
}

func TestSubmitQuizAdvancesOnPassingScore(t *testing.T) {
	f := newOrchestratorFixture(t, replies(fakeReply{err: errors.New("down")}))
	result := intake(t, f)

	path, err := f.pathRepo.FindByID(result.PathID)
	require.NoError(t, err)
	quiz := seedQuiz(t, f, path.Resources[0])

	// 3 of 5 correct is exactly the advancement threshold.
	outcome, err := f.svc.SubmitQuiz(context.Background(), quiz.ID, result.ProfileID, answersFor(quiz.Questions, 3))
	require.NoError(t, err)
	assert.Equal(t, float64(60), outcome.OverallFeedback.AverageScore)

	path, err = f.pathRepo.FindByID(result.PathID)
	require.NoError(t, err)
	assert.Equal(t, 1, path.CurrentPosition)

	fb, ok := path.Progress.Data()[quiz.ResourceID]
	require.True(t, ok)
	assert.Equal(t, 3, fb.CorrectAnswers)

	stored, err := f.quizRepo.FindByID(quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, model.QuizCompleted, stored.Status)
}

func TestSubmitQuizHoldsOnFailingScore(t *testing.T) {
	f := newOrchestratorFixture(t, replies(fakeReply{err: errors.New("down")}))
	result := intake(t, f)

	path, err := f.pathRepo.FindByID(result.PathID)
	require.NoError(t, err)
	quiz := seedQuiz(t, f, path.Resources[0])

	outcome, err := f.svc.SubmitQuiz(context.Background(), quiz.ID, result.ProfileID, answersFor(quiz.Questions, 2))
	require.NoError(t, err)
	assert.Equal(t, float64(40), outcome.OverallFeedback.AverageScore)

	path, err = f.pathRepo.FindByID(result.PathID)
	require.NoError(t, err)
	assert.Equal(t, 0, path.CurrentPosition)
	assert.Empty(t, path.Progress.Data())

	// The failed attempt is still recorded.
	subs, err := f.quizRepo.SubmissionsByLearner(result.ProfileID)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestSubmitQuizCapsAtPathEnd(t *testing.T) {
	f := newOrchestratorFixture(t, replies(fakeReply{err: errors.New("down")}))
	result := intake(t, f)

	path, err := f.pathRepo.FindByID(result.PathID)
	require.NoError(t, err)
	path.CurrentPosition = len(path.Resources)
	require.NoError(t, f.pathRepo.Save(path))

	quiz := seedQuiz(t, f, path.Resources[len(path.Resources)-1])
	_, err = f.svc.SubmitQuiz(context.Background(), quiz.ID, result.ProfileID, answersFor(quiz.Questions, 5))
	require.NoError(t, err)

	path, err = f.pathRepo.FindByID(result.PathID)
	require.NoError(t, err)
	assert.Equal(t, len(path.Resources), path.CurrentPosition)
}

func TestSubmitQuizMissingQuiz(t *testing.T) {
	f := newOrchestratorFixture(t, replies())
	_, err := f.svc.SubmitQuiz(context.Background(), "missing", "learner", nil)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestGetPathState(t *testing.T) {
	f := newOrchestratorFixture(t, replies(fakeReply{err: errors.New("down")}))
	result := intake(t, f)

	state, err := f.svc.GetPathState(result.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, 0, state.CurrentPosition)
	assert.Equal(t, 5, state.TotalResources)
	assert.Zero(t, state.CompletionPercentage)
	require.NotNil(t, state.CurrentResource)
	assert.Equal(t, state.AllResources[0], state.CurrentResource.ID)

	// A finished path has no current resource.
	path, err := f.pathRepo.FindByID(result.PathID)
	require.NoError(t, err)
	path.CurrentPosition = len(path.Resources)
	require.NoError(t, f.pathRepo.Save(path))

	state, err = f.svc.GetPathState(result.ProfileID)
	require.NoError(t, err)
	assert.Nil(t, state.CurrentResource)
	assert.Equal(t, float64(100), state.CompletionPercentage)
}

func TestGetPathStateMissing(t *testing.T) {
	f := newOrchestratorFixture(t, replies())

	_, err := f.svc.GetPathState("missing")
	assert.ErrorIs(t, err, util.ErrLearnerNotFound)

	profile := seedProfile(t, f.profileRepo, "algebra", model.StyleVisual, 1)
	_, err = f.svc.GetPathState(profile.ID)
	assert.ErrorIs(t, err, util.ErrPathNotFound)
}

func TestGetProgress(t *testing.T) {
	f := newOrchestratorFixture(t, replies(fakeReply{err: errors.New("down")}))
	result := intake(t, f)

	report, err := f.svc.GetProgress(result.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, "Fay", report.LearnerProfile.Name)
	assert.Equal(t, 5, report.LearningPath.TotalResources)
	assert.Zero(t, report.LearningPath.CompletedResources)
	assert.NotNil(t, report.Details)
}
