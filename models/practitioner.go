package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Practitioner is a bookable professional with a single daily working window
type Practitioner struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PractitionerID string `gorm:"size:64;uniqueIndex;not null" json:"practitionerId"` // Externally assigned, e.g. "DOC001"
	Name           string `gorm:"size:200;not null" json:"name"`
	StartTime      string `gorm:"size:5;not null" json:"start_time"` // "09:00"
	EndTime        string `gorm:"size:5;not null" json:"end_time"`   // "17:00"
}

// BeforeCreate hook to generate UUID
func (p *Practitioner) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Practitioner model
func (Practitioner) TableName() string {
	return "practitioners"
}
