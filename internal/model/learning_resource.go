package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ResourceGenerating = "generating"
	ResourceReady      = "ready"
)

// LearningResource is one unit of study material. It is inserted as a
// placeholder (status=generating) during skeleton build and rewritten in
// place by background materialization. Status only ever moves
// generating -> ready.
type LearningResource struct {
	UUIDBase
	LearnerID          string                      `gorm:"type:varchar(36);index" json:"learner_id"`
	Title              string                      `gorm:"size:255;not null" json:"title"`
	Type               string                      `gorm:"size:64" json:"type"`
	Content            string                      `gorm:"type:longtext" json:"content"`
	Summary            string                      `gorm:"type:text" json:"summary"`
	DifficultyLevel    int                         `json:"difficulty_level"`
	LearningStyle      string                      `gorm:"size:32" json:"learning_style"`
	Topic              string                      `gorm:"size:255" json:"topic"`
	EstimatedDuration  int                         `json:"estimated_duration"`
	Prerequisites      datatypes.JSONSlice[string] `json:"prerequisites"`
	LearningObjectives datatypes.JSONSlice[string] `json:"learning_objectives"`
	Status             string                      `gorm:"size:16;index" json:"status"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

func (LearningResource) TableName() string {
	return "learning_resources"
}
