package repository

import (
	"ai_tutor_backend/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) Create(p *model.LearnerProfile) error {
	return r.DB.Create(p).Error
}

func (r *ProfileRepository) FindByID(id string) (*model.LearnerProfile, error) {
	var p model.LearnerProfile
	err := r.DB.Where("id = ?", id).First(&p).Error
	return &p, err
}

func (r *ProfileRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&model.LearnerProfile{}).Count(&n).Error
	return n, err
}

type StyleCount struct {
	LearningStyle string `json:"learning_style"`
	Count         int64  `json:"count"`
}

// StyleDistribution groups learners by learning style for the dashboard.
func (r *ProfileRepository) StyleDistribution() ([]StyleCount, error) {
	var rows []StyleCount
	err := r.DB.Model(&model.LearnerProfile{}).
		Select("learning_style, count(*) as count").
		Group("learning_style").
		Scan(&rows).Error
	return rows, err
}
