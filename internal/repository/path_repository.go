package repository

import (
	"time"

	"ai_tutor_backend/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PathRepository struct {
	DB *gorm.DB
}

func NewPathRepository(db *gorm.DB) *PathRepository {
	return &PathRepository{DB: db}
}

func (r *PathRepository) Create(p *model.LearningPath) error {
	return r.DB.Create(p).Error
}

func (r *PathRepository) FindByID(id string) (*model.LearningPath, error) {
	var p model.LearningPath
	err := r.DB.Where("id = ?", id).First(&p).Error
	return &p, err
}

func (r *PathRepository) FindByLearner(learnerID string) (*model.LearningPath, error) {
	var p model.LearningPath
	err := r.DB.Where("learner_id = ?", learnerID).First(&p).Error
	return &p, err
}

func (r *PathRepository) Save(p *model.LearningPath) error {
	p.UpdatedAt = time.Now()
	return r.DB.Save(p).Error
}

// Advance records quiz feedback for a resource and moves the cursor forward.
// The read-modify-write runs inside a transaction so concurrent submissions
// for the same learner cannot drop each other's progress entries.
func (r *PathRepository) Advance(pathID, resourceID string, newPosition int, fb model.OverallFeedback) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var p model.LearningPath
		if err := tx.Where("id = ?", pathID).First(&p).Error; err != nil {
			return err
		}
		progress := p.Progress.Data()
		if progress == nil {
			progress = make(map[string]model.OverallFeedback)
		}
		progress[resourceID] = fb
		p.Progress = datatypes.NewJSONType(progress)
		p.CurrentPosition = newPosition
		p.UpdatedAt = time.Now()
		return tx.Save(&p).Error
	})
}

func (r *PathRepository) All() ([]model.LearningPath, error) {
	var paths []model.LearningPath
	err := r.DB.Find(&paths).Error
	return paths, err
}
