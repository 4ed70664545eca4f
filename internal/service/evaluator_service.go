package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/pkg/logger"
	"ai_tutor_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// EvaluatorService grades quiz answers and turns raw results into
// learner-facing feedback.
type EvaluatorService struct {
	generator TextGenerator
}

func NewEvaluatorService(generator TextGenerator) *EvaluatorService {
	return &EvaluatorService{generator: generator}
}

// Evaluate grades a single answer. Correctness is a case-insensitive
// comparison of trimmed strings; feedback text comes from the generator
// with a templated fallback when generation fails.
func (s *EvaluatorService) Evaluate(ctx context.Context, q model.QuizQuestion, answer string) model.EvalResult {
	isCorrect := strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.CorrectAnswer))

	result := model.EvalResult{
		IsCorrect: isCorrect,
		Topic:     q.Topic,
	}
	if isCorrect {
		result.Score = 100
	}

	verdict := "INCORRECT"
	if isCorrect {
		verdict = "CORRECT"
	}
	prompt := fmt.Sprintf(`You are an educational assessment expert providing constructive, encouraging feedback.

TASK: Provide educational feedback for this quiz question.

QUESTION: %s
OPTIONS: %s
CORRECT ANSWER: %s
USER ANSWER: %s
RESULT: %s

Write helpful, encouraging feedback (2-3 sentences) that:
1. Explains why the answer is correct/incorrect
2. Provides a learning tip or concept explanation
3. Encourages continued learning

Keep the tone positive and educational. Return only the feedback text without any additional formatting:`,
		q.Question, strings.Join(q.Options, ", "), q.CorrectAnswer, answer, verdict)

	opts := DefaultOptions()
	opts.MaxOutputTokens = 300
	feedback, err := s.generator.Generate(ctx, prompt, opts)
	feedback = strings.TrimSpace(feedback)
	if err != nil || feedback == "" {
		if err != nil {
			logger.Log.Warn("feedback generation failed", zap.Error(err), zap.String("topic", q.Topic))
			monitoring.GenerationCounter.WithLabelValues("feedback", "fallback").Inc()
		}
		if isCorrect {
			feedback = "Your answer is correct."
		} else {
			feedback = fmt.Sprintf("Your answer is incorrect. The correct answer is %s.", q.CorrectAnswer)
		}
	} else {
		monitoring.GenerationCounter.WithLabelValues("feedback", "success").Inc()
	}
	result.Feedback = feedback
	return result
}

// Aggregate summarizes a set of per-question results into overall feedback.
func (s *EvaluatorService) Aggregate(ctx context.Context, results []model.EvalResult) model.OverallFeedback {
	if len(results) == 0 {
		return model.OverallFeedback{Recommendation: "No quiz data available"}
	}

	var total float64
	var weak, strong []string
	for _, r := range results {
		total += r.Score
		if r.IsCorrect {
			strong = append(strong, r.Topic)
		} else {
			weak = append(weak, r.Topic)
		}
	}
	average := total / float64(len(results))

	fb := model.OverallFeedback{
		AverageScore:   average,
		TotalQuestions: len(results),
		CorrectAnswers: len(strong),
		WeakTopics:     dedupe(weak),
		StrongTopics:   dedupe(strong),
	}

	prompt := fmt.Sprintf(`You are an educational assessment expert.

TASK: Provide an encouraging recommendation based on quiz performance.

PERFORMANCE DATA:
- Score: %.1f%%
- Correct: %d/%d
- Strong areas: %v
- Areas to improve: %v

Write an encouraging 1-2 sentence recommendation that:
1. Acknowledges their effort
2. Provides specific guidance for improvement
3. Motivates continued learning

Return only the recommendation text without any additional formatting:`,
		average, len(strong), len(results), fb.StrongTopics, fb.WeakTopics)

	opts := DefaultOptions()
	opts.MaxOutputTokens = 200
	recommendation, err := s.generator.Generate(ctx, prompt, opts)
	recommendation = strings.TrimSpace(recommendation)
	if err != nil || recommendation == "" {
		if average >= 70 {
			recommendation = "Great job! Keep up the good work!"
		} else {
			recommendation = "Keep practicing to improve your understanding!"
		}
	}
	fb.Recommendation = recommendation
	return fb
}

// AnalyzeWeakAreas distills a weak-area topic list from quiz results,
// asking the generator first and falling back to the topics of incorrect
// answers.
func (s *EvaluatorService) AnalyzeWeakAreas(ctx context.Context, results []model.EvalResult) []string {
	if len(results) == 0 {
		return nil
	}

	raw, err := json.MarshalIndent(results, "", "  ")
	if err == nil {
		prompt := fmt.Sprintf(`You are an educational assessment expert.

TASK: Analyze quiz results and identify weak learning areas.

Quiz Results:
%s

Based on incorrect answers and topics, identify the main weak areas that need attention.
Return only a JSON array of weak area topics (maximum 5 topics).

Example format: ["algebra", "geometry", "calculus"]

Return only the JSON array without any additional text:`, raw)

		opts := DefaultOptions()
		opts.MaxOutputTokens = 500
		response, genErr := s.generator.Generate(ctx, prompt, opts)
		if genErr == nil {
			if span := extractJSONArray(response); span != "" {
				var areas []string
				if json.Unmarshal([]byte(span), &areas) == nil && len(areas) > 0 {
					return areas
				}
			}
		}
	}

	var weak []string
	for _, r := range results {
		if !r.IsCorrect && r.Topic != "" {
			weak = append(weak, strings.ToLower(r.Topic))
		}
	}
	return dedupe(weak)
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
