package model

import (
	"time"

	"gorm.io/datatypes"
)

// LearningPath is one learner's ordered curriculum. Resources holds resource
// ids in study order; CurrentPosition is a 0-based cursor into it and may
// equal len(Resources) once the path is finished. Progress maps resource id
// to the quiz feedback that unlocked the advance past it.
type LearningPath struct {
	UUIDBase
	LearnerID       string                                        `gorm:"type:varchar(36);uniqueIndex;not null" json:"learner_id"`
	Resources       datatypes.JSONSlice[string]                   `json:"resources"`
	CurrentPosition int                                           `gorm:"default:0" json:"current_position"`
	Progress        datatypes.JSONType[map[string]OverallFeedback] `json:"progress"`
	CreatedAt       time.Time                                     `json:"created_at"`
	UpdatedAt       time.Time                                     `json:"updated_at"`
}

func (LearningPath) TableName() string {
	return "learning_paths"
}
