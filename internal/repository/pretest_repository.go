package repository

import (
	"ai_tutor_backend/internal/model"

	"gorm.io/gorm"
)

type PretestRepository struct {
	DB *gorm.DB
}

func NewPretestRepository(db *gorm.DB) *PretestRepository {
	return &PretestRepository{DB: db}
}

func (r *PretestRepository) Create(p *model.Pretest) error {
	return r.DB.Create(p).Error
}

func (r *PretestRepository) FindByID(id string) (*model.Pretest, error) {
	var p model.Pretest
	err := r.DB.Where("id = ?", id).First(&p).Error
	return &p, err
}

func (r *PretestRepository) Save(p *model.Pretest) error {
	return r.DB.Save(p).Error
}
