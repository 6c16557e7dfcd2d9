package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyBreak is a break repeated on every working day
type DailyBreak struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PractitionerID string `gorm:"size:64;index;not null" json:"practitionerId"`
	StartTime      string `gorm:"size:5;not null" json:"start_time"`
	EndTime        string `gorm:"size:5;not null" json:"end_time"`
	Label          string `gorm:"size:100" json:"label,omitempty"` // "Lunch"
}

// BeforeCreate hook to generate UUID
func (b *DailyBreak) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for DailyBreak model
func (DailyBreak) TableName() string {
	return "daily_breaks"
}

// ExceptionBreak is an extra break on one date. It adds to the daily
// breaks, it does not replace them.
type ExceptionBreak struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PractitionerID string `gorm:"size:64;index:idx_exception_break_day;not null" json:"practitionerId"`
	Date           string `gorm:"size:10;index:idx_exception_break_day;not null" json:"date"`
	StartTime      string `gorm:"size:5;not null" json:"start_time"`
	EndTime        string `gorm:"size:5;not null" json:"end_time"`
	Reason         string `gorm:"size:200" json:"reason,omitempty"`
}

// BeforeCreate hook to generate UUID
func (b *ExceptionBreak) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for ExceptionBreak model
func (ExceptionBreak) TableName() string {
	return "exception_breaks"
}
