package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ai_tutor_backend/internal/config"
	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/internal/repository"
	"ai_tutor_backend/internal/util"
	"ai_tutor_backend/pkg/logger"
	"ai_tutor_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizService generates assessments and manages their lifecycle.
type QuizService struct {
	generator    TextGenerator
	evaluator    *EvaluatorService
	quizRepo     *repository.QuizRepository
	pretestRepo  *repository.PretestRepository
	profileRepo  *repository.ProfileRepository
	resourceRepo *repository.ResourceRepository
	cfg          config.PipelineConfig
}

func NewQuizService(
	generator TextGenerator,
	evaluator *EvaluatorService,
	quizRepo *repository.QuizRepository,
	pretestRepo *repository.PretestRepository,
	profileRepo *repository.ProfileRepository,
	resourceRepo *repository.ResourceRepository,
	cfg config.PipelineConfig,
) *QuizService {
	return &QuizService{
		generator:    generator,
		evaluator:    evaluator,
		quizRepo:     quizRepo,
		pretestRepo:  pretestRepo,
		profileRepo:  profileRepo,
		resourceRepo: resourceRepo,
		cfg:          cfg,
	}
}

// rawQuestion is the shape the generator is asked to emit.
type rawQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Topic         string   `json:"topic"`
}

// GenerateQuestions asks the generator for multiple-choice questions and
// validates each one. Questions missing fields or with fewer than four
// options are discarded; a correct answer not present among the options is
// replaced with the first option. After the retry budget is exhausted the
// static bank supplies deterministic questions.
func (s *QuizService) GenerateQuestions(ctx context.Context, topic string, difficulty, count int) []model.QuizQuestion {
	prompt := fmt.Sprintf(`You are an expert educational content generator.

TASK: Create exactly %d multiple choice questions about %s at difficulty level %d out of 5.

REQUIREMENTS:
- Each question must have exactly 4 options
- Difficulty level %d/5 where 1=beginner, 5=expert
- Focus specifically on %s
- Return ONLY valid JSON format
- Make questions educational and accurate
- Ensure one correct answer per question

FORMAT (return exactly this structure):
[
  {
    "question": "What is the main concept of %s?",
    "options": ["Correct Answer", "Wrong Option 1", "Wrong Option 2", "Wrong Option 3"],
    "correct_answer": "Correct Answer",
    "topic": "%s"
  }
]

Create %d questions about %s now. Return only the JSON array without any additional text or formatting:`,
		count, topic, difficulty, difficulty, topic, topic, topic, count, topic)

	for attempt := 1; attempt <= s.cfg.QuizMaxRetries; attempt++ {
		questions, err := s.generateOnce(ctx, prompt, topic, difficulty, count)
		if err == nil {
			monitoring.GenerationCounter.WithLabelValues("quiz", "success").Inc()
			return questions
		}
		logger.Log.Warn("question generation attempt failed",
			zap.Int("attempt", attempt),
			zap.String("topic", topic),
			zap.Error(err))
		if attempt < s.cfg.QuizMaxRetries {
			select {
			case <-time.After(s.cfg.QuizRetryDelay):
			case <-ctx.Done():
				monitoring.GenerationCounter.WithLabelValues("quiz", "fallback").Inc()
				return bankQuestions(topic, difficulty, count)
			}
		}
	}

	logger.Log.Warn("question generation exhausted retries, using question bank",
		zap.String("topic", topic))
	monitoring.GenerationCounter.WithLabelValues("quiz", "fallback").Inc()
	return bankQuestions(topic, difficulty, count)
}

func (s *QuizService) generateOnce(ctx context.Context, prompt, topic string, difficulty, count int) ([]model.QuizQuestion, error) {
	response, err := s.generator.Generate(ctx, prompt, DefaultOptions())
	if err != nil {
		return nil, err
	}
	if response == "" {
		return nil, errors.New("empty generation response")
	}

	span := extractJSONArray(response)
	if span == "" {
		return nil, errors.New("no JSON array in response")
	}
	var raw []rawQuestion
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil, fmt.Errorf("parse questions: %w", err)
	}
	if len(raw) > count {
		raw = raw[:count]
	}

	questions := make([]model.QuizQuestion, 0, count)
	for _, q := range raw {
		if q.Question == "" || q.CorrectAnswer == "" || len(q.Options) < 4 {
			continue
		}
		options := q.Options[:4]
		correct := q.CorrectAnswer
		if !contains(options, correct) {
			correct = options[0]
		}
		qTopic := q.Topic
		if qTopic == "" {
			qTopic = topic
		}
		questions = append(questions, model.QuizQuestion{
			ID:              model.GenerateUUID(),
			Question:        q.Question,
			Options:         options,
			CorrectAnswer:   correct,
			Topic:           qTopic,
			DifficultyLevel: difficulty,
		})
	}
	if len(questions) < count {
		return nil, fmt.Errorf("only %d of %d questions were valid", len(questions), count)
	}
	return questions[:count], nil
}

// CreateResourceQuiz builds and stores an active quiz for a resource,
// using the resource's topic and difficulty.
func (s *QuizService) CreateResourceQuiz(ctx context.Context, resourceID string) (*model.Quiz, error) {
	resource, err := s.resourceRepo.FindByID(resourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrResourceNotFound
		}
		return nil, err
	}

	questions := s.GenerateQuestions(ctx, resource.Topic, resource.DifficultyLevel, s.cfg.ResourceQuizQuestions)
	for i := range questions {
		questions[i].ResourceID = resourceID
	}

	quiz := &model.Quiz{
		ResourceID: resourceID,
		Questions:  datatypes.NewJSONSlice(questions),
		Status:     model.QuizActive,
		CreatedAt:  time.Now(),
	}
	if err := s.quizRepo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// StartPretest creates a diagnostic pretest for a learner on a subject.
func (s *QuizService) StartPretest(ctx context.Context, learnerID, subject string) (*model.Pretest, error) {
	if _, err := s.profileRepo.FindByID(learnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLearnerNotFound
		}
		return nil, err
	}

	questions := s.GenerateQuestions(ctx, subject, s.cfg.PretestDifficulty, s.cfg.PretestQuestions)
	pretest := &model.Pretest{
		LearnerID: learnerID,
		Subject:   subject,
		Questions: datatypes.NewJSONSlice(questions),
		Status:    model.QuizActive,
		CreatedAt: time.Now(),
	}
	if err := s.pretestRepo.Create(pretest); err != nil {
		return nil, err
	}
	return pretest, nil
}

// SubmitPretest grades pretest answers, stores the results on the pretest,
// and marks it completed. Unanswered questions grade as empty answers.
func (s *QuizService) SubmitPretest(ctx context.Context, pretestID string, answers map[string]string) (*model.Pretest, error) {
	pretest, err := s.pretestRepo.FindByID(pretestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPretestNotFound
		}
		return nil, err
	}

	results := make([]model.EvalResult, 0, len(pretest.Questions))
	for _, q := range pretest.Questions {
		results = append(results, s.evaluator.Evaluate(ctx, q, answers[q.ID]))
	}
	feedback := s.evaluator.Aggregate(ctx, results)
	weakAreas := s.evaluator.AnalyzeWeakAreas(ctx, results)

	now := time.Now()
	pretest.Answers = datatypes.NewJSONType(answers)
	pretest.Results = datatypes.NewJSONSlice(results)
	pretest.OverallFeedback = datatypes.NewJSONType(feedback)
	pretest.WeakAreas = datatypes.NewJSONSlice(weakAreas)
	pretest.Status = model.QuizCompleted
	pretest.CompletedAt = &now
	if err := s.pretestRepo.Save(pretest); err != nil {
		return nil, err
	}
	return pretest, nil
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
