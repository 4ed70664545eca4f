package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UUIDBase is embedded by every persisted entity; ids are v4 uuid strings so
// documents can be referenced across tables without exposing row numbers.
type UUIDBase struct {
	ID string `gorm:"primaryKey;type:varchar(36)" json:"id"`
}

func (b *UUIDBase) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

func GenerateUUID() string {
	return uuid.New().String()
}
