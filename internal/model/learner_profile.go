package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StyleVisual      = "visual"
	StyleAuditory    = "auditory"
	StyleReading     = "reading"
	StyleKinesthetic = "kinesthetic"
)

// LearnerProfile is created once at intake and never updated afterwards.
type LearnerProfile struct {
	UUIDBase
	Name           string                        `gorm:"size:255;not null" json:"name"`
	LearningStyle  string                        `gorm:"size:32;not null" json:"learning_style"`
	KnowledgeLevel int                           `gorm:"not null" json:"knowledge_level"`
	Subject        string                        `gorm:"size:64;not null" json:"subject"`
	WeakAreas      datatypes.JSONSlice[string]   `json:"weak_areas"`
	CreatedAt      time.Time                     `json:"created_at"`
}

func (LearnerProfile) TableName() string {
	return "learner_profiles"
}
