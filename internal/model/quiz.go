package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	QuizActive    = "active"
	QuizCompleted = "completed"
)

// QuizQuestion is embedded in quiz and pretest documents rather than stored
// in its own table; questions are generated fresh per request and never
// deduplicated. Options always has exactly 4 entries and CorrectAnswer is
// always one of them.
type QuizQuestion struct {
	ID              string   `json:"id"`
	Question        string   `json:"question"`
	Options         []string `json:"options"`
	CorrectAnswer   string   `json:"correct_answer"`
	Topic           string   `json:"topic"`
	DifficultyLevel int      `json:"difficulty_level"`
	ResourceID      string   `json:"resource_id"`
}

// EvalResult is the evaluator's verdict on a single answer.
type EvalResult struct {
	IsCorrect bool    `json:"is_correct"`
	Feedback  string  `json:"feedback"`
	Topic     string  `json:"topic"`
	Score     float64 `json:"score"`
}

// OverallFeedback aggregates one quiz's results.
type OverallFeedback struct {
	AverageScore   float64  `json:"average_score"`
	TotalQuestions int      `json:"total_questions"`
	CorrectAnswers int      `json:"correct_answers"`
	WeakTopics     []string `json:"weak_topics"`
	StrongTopics   []string `json:"strong_topics"`
	Recommendation string   `json:"recommendation"`
}

// Quiz is a question bundle bound to a learning resource.
type Quiz struct {
	UUIDBase
	ResourceID string                             `gorm:"type:varchar(36);index" json:"resource_id"`
	Questions  datatypes.JSONSlice[QuizQuestion]  `json:"questions"`
	Status     string                             `gorm:"size:16" json:"status"`
	CreatedAt  time.Time                          `json:"created_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Pretest is a diagnostic quiz bound to a subject instead of a resource.
// Submission results are written back onto the document itself.
type Pretest struct {
	UUIDBase
	LearnerID       string                                 `gorm:"type:varchar(36);index" json:"learner_id"`
	Subject         string                                 `gorm:"size:64" json:"subject"`
	Questions       datatypes.JSONSlice[QuizQuestion]      `json:"questions"`
	Status          string                                 `gorm:"size:16" json:"status"`
	Answers         datatypes.JSONType[map[string]string]  `json:"answers"`
	Results         datatypes.JSONSlice[EvalResult]        `json:"results"`
	OverallFeedback datatypes.JSONType[OverallFeedback]    `json:"overall_feedback"`
	WeakAreas       datatypes.JSONSlice[string]            `json:"weak_areas"`
	CreatedAt       time.Time                              `json:"created_at"`
	CompletedAt     *time.Time                             `json:"completed_at,omitempty"`
}

func (Pretest) TableName() string {
	return "pretests"
}

// QuizSubmission records one answered resource quiz for audit.
type QuizSubmission struct {
	UUIDBase
	QuizID          string                                `gorm:"type:varchar(36);index" json:"quiz_id"`
	LearnerID       string                                `gorm:"type:varchar(36);index" json:"learner_id"`
	Answers         datatypes.JSONType[map[string]string] `json:"answers"`
	Results         datatypes.JSONSlice[EvalResult]       `json:"results"`
	OverallFeedback datatypes.JSONType[OverallFeedback]   `json:"overall_feedback"`
	SubmittedAt     time.Time                             `json:"submitted_at"`
}

func (QuizSubmission) TableName() string {
	return "quiz_submissions"
}
