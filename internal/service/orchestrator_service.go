package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"ai_tutor_backend/internal/config"
	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/internal/repository"
	"ai_tutor_backend/internal/util"
	"ai_tutor_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FlexInt decodes a JSON number or a numeric string. Clients send
// knowledge_level both ways.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			*f = FlexInt(n)
		}
		return nil
	}
	// Unparseable values fall back to the default level.
	*f = 0
	return nil
}

// FlexStringList decodes a JSON string array. Any other shape decodes to an
// empty list instead of failing the request.
type FlexStringList []string

func (f *FlexStringList) UnmarshalJSON(b []byte) error {
	var items []string
	if err := json.Unmarshal(b, &items); err == nil {
		*f = items
		return nil
	}
	*f = nil
	return nil
}

// IntakeInput is a new learner's profile as submitted by the client.
type IntakeInput struct {
	Name           string         `json:"name" binding:"required"`
	LearningStyle  string         `json:"learning_style" binding:"required"`
	KnowledgeLevel FlexInt        `json:"knowledge_level"`
	Subject        string         `json:"subject" binding:"required"`
	WeakAreas      FlexStringList `json:"weak_areas"`
}

// IntakeResult summarizes what intake created. InitialResources carries at
// most the first three resource ids so the client can start rendering.
type IntakeResult struct {
	ProfileID        string   `json:"profile_id"`
	PathID           string   `json:"path_id"`
	InitialResources []string `json:"initial_resources"`
	Status           string   `json:"status"`
}

// OrchestratorService coordinates the full learner lifecycle: intake,
// content materialization, quiz submission, and progress reads.
type OrchestratorService struct {
	profileRepo  *repository.ProfileRepository
	pathRepo     *repository.PathRepository
	resourceRepo *repository.ResourceRepository
	quizRepo     *repository.QuizRepository
	path         *PathService
	content      *ContentService
	evaluator    *EvaluatorService
	cfg          config.PipelineConfig
}

func NewOrchestratorService(
	profileRepo *repository.ProfileRepository,
	pathRepo *repository.PathRepository,
	resourceRepo *repository.ResourceRepository,
	quizRepo *repository.QuizRepository,
	path *PathService,
	content *ContentService,
	evaluator *EvaluatorService,
	cfg config.PipelineConfig,
) *OrchestratorService {
	return &OrchestratorService{
		profileRepo:  profileRepo,
		pathRepo:     pathRepo,
		resourceRepo: resourceRepo,
		quizRepo:     quizRepo,
		path:         path,
		content:      content,
		evaluator:    evaluator,
		cfg:          cfg,
	}
}

// ProcessNewLearner stores the profile, builds a skeleton path, and kicks
// off background materialization. The returned job lets callers observe or
// cancel the background run.
func (o *OrchestratorService) ProcessNewLearner(ctx context.Context, input IntakeInput) (*IntakeResult, *MaterializeJob, error) {
	level := int(input.KnowledgeLevel)
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	weakAreas := []string(input.WeakAreas)
	if weakAreas == nil {
		weakAreas = []string{}
	}

	profile := &model.LearnerProfile{
		Name:           input.Name,
		LearningStyle:  input.LearningStyle,
		KnowledgeLevel: level,
		Subject:        input.Subject,
		WeakAreas:      datatypes.NewJSONSlice(weakAreas),
		CreatedAt:      time.Now(),
	}
	if err := o.profileRepo.Create(profile); err != nil {
		return nil, nil, err
	}
	logger.Log.Info("created learner profile",
		zap.String("learner_id", profile.ID),
		zap.String("subject", profile.Subject),
		zap.String("style", profile.LearningStyle))

	path, err := o.path.BuildSkeleton(profile)
	if err != nil {
		return nil, nil, err
	}

	job := o.StartMaterialization(path.ID)

	ids := []string(path.Resources)
	initial := ids
	if len(initial) > 3 {
		initial = initial[:3]
	}
	return &IntakeResult{
		ProfileID:        profile.ID,
		PathID:           path.ID,
		InitialResources: initial,
		Status:           "generating_content",
	}, job, nil
}

// QuizOutcome is what a learner gets back from a quiz submission.
type QuizOutcome struct {
	Results         []model.EvalResult    `json:"results"`
	OverallFeedback model.OverallFeedback `json:"overall_feedback"`
}

// SubmitQuiz grades a quiz, records the submission, and advances the
// learner's path when the average score clears the advancement threshold.
// The cursor never moves past the end of the path.
func (o *OrchestratorService) SubmitQuiz(ctx context.Context, quizID, learnerID string, answers map[string]string) (*QuizOutcome, error) {
	quiz, err := o.quizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	results := make([]model.EvalResult, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		results = append(results, o.evaluator.Evaluate(ctx, q, answers[q.ID]))
	}
	feedback := o.evaluator.Aggregate(ctx, results)

	submission := &model.QuizSubmission{
		QuizID:          quizID,
		LearnerID:       learnerID,
		Answers:         datatypes.NewJSONType(answers),
		Results:         datatypes.NewJSONSlice(results),
		OverallFeedback: datatypes.NewJSONType(feedback),
		SubmittedAt:     time.Now(),
	}
	if err := o.quizRepo.CreateSubmission(submission); err != nil {
		return nil, err
	}
	if err := o.quizRepo.MarkCompleted(quizID); err != nil {
		logger.Log.Warn("failed to mark quiz completed", zap.String("quiz_id", quizID), zap.Error(err))
	}

	if feedback.AverageScore >= float64(o.cfg.AdvanceScore) {
		if err := o.advancePath(learnerID, quiz.ResourceID, feedback); err != nil {
			logger.Log.Warn("failed to advance learning path",
				zap.String("learner_id", learnerID),
				zap.Error(err))
		}
	}

	return &QuizOutcome{Results: results, OverallFeedback: feedback}, nil
}

func (o *OrchestratorService) advancePath(learnerID, resourceID string, fb model.OverallFeedback) error {
	path, err := o.pathRepo.FindByLearner(learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	newPosition := path.CurrentPosition + 1
	if newPosition > len(path.Resources) {
		newPosition = len(path.Resources)
	}
	return o.pathRepo.Advance(path.ID, resourceID, newPosition, fb)
}

// PathState is the snapshot a client polls while working through a path.
type PathState struct {
	LearnerID            string                           `json:"learner_id"`
	CurrentPosition      int                              `json:"current_position"`
	TotalResources       int                              `json:"total_resources"`
	CompletedResources   int                              `json:"completed_resources"`
	CompletionPercentage float64                          `json:"completion_percentage"`
	CurrentResource      *model.LearningResource          `json:"current_resource"`
	AllResources         []string                         `json:"all_resources"`
	Progress             map[string]model.OverallFeedback `json:"progress"`
}

// GetPathState returns the learner's path with the current resource
// resolved. CurrentResource is nil once the path is finished.
func (o *OrchestratorService) GetPathState(learnerID string) (*PathState, error) {
	if _, err := o.profileRepo.FindByID(learnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLearnerNotFound
		}
		return nil, err
	}
	path, err := o.pathRepo.FindByLearner(learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPathNotFound
		}
		return nil, err
	}

	ids := []string(path.Resources)
	var current *model.LearningResource
	if path.CurrentPosition < len(ids) {
		current, err = o.resourceRepo.FindByID(ids[path.CurrentPosition])
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	state := &PathState{
		LearnerID:          learnerID,
		CurrentPosition:    path.CurrentPosition,
		TotalResources:     len(ids),
		CompletedResources: path.CurrentPosition,
		CurrentResource:    current,
		AllResources:       ids,
		Progress:           path.Progress.Data(),
	}
	if state.Progress == nil {
		state.Progress = map[string]model.OverallFeedback{}
	}
	if state.TotalResources > 0 {
		state.CompletionPercentage = float64(state.CompletedResources) / float64(state.TotalResources) * 100
	}
	return state, nil
}

// ProgressReport bundles the learner profile with path completion metrics.
type ProgressReport struct {
	LearnerProfile *model.LearnerProfile            `json:"learner_profile"`
	LearningPath   ProgressSummary                  `json:"learning_path"`
	Details        map[string]model.OverallFeedback `json:"progress_details"`
}

type ProgressSummary struct {
	TotalResources       int     `json:"total_resources"`
	CompletedResources   int     `json:"completed_resources"`
	CompletionPercentage float64 `json:"completion_percentage"`
	CurrentPosition      int     `json:"current_position"`
}

func (o *OrchestratorService) GetProgress(learnerID string) (*ProgressReport, error) {
	profile, err := o.profileRepo.FindByID(learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLearnerNotFound
		}
		return nil, err
	}
	path, err := o.pathRepo.FindByLearner(learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPathNotFound
		}
		return nil, err
	}

	total := len(path.Resources)
	report := &ProgressReport{
		LearnerProfile: profile,
		LearningPath: ProgressSummary{
			TotalResources:     total,
			CompletedResources: path.CurrentPosition,
			CurrentPosition:    path.CurrentPosition,
		},
		Details: path.Progress.Data(),
	}
	if report.Details == nil {
		report.Details = map[string]model.OverallFeedback{}
	}
	if total > 0 {
		report.LearningPath.CompletionPercentage = float64(path.CurrentPosition) / float64(total) * 100
	}
	return report, nil
}
