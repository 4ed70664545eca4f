package repository

import (
	"ai_tutor_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(q *model.Quiz) error {
	return r.DB.Create(q).Error
}

func (r *QuizRepository) FindByID(id string) (*model.Quiz, error) {
	var q model.Quiz
	err := r.DB.Where("id = ?", id).First(&q).Error
	return &q, err
}

func (r *QuizRepository) MarkCompleted(id string) error {
	return r.DB.Model(&model.Quiz{}).
		Where("id = ?", id).
		Update("status", model.QuizCompleted).Error
}

func (r *QuizRepository) CreateSubmission(s *model.QuizSubmission) error {
	return r.DB.Create(s).Error
}

func (r *QuizRepository) SubmissionsByLearner(learnerID string) ([]model.QuizSubmission, error) {
	var subs []model.QuizSubmission
	err := r.DB.Where("learner_id = ?", learnerID).Order("submitted_at").Find(&subs).Error
	return subs, err
}

func (r *QuizRepository) CountSubmissions() (int64, error) {
	var n int64
	err := r.DB.Model(&model.QuizSubmission{}).Count(&n).Error
	return n, err
}
