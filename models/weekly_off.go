package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeeklyOff is a recurring day off, effective from StartDate until EndDate
// (inclusive). A nil EndDate never expires.
type WeeklyOff struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PractitionerID string  `gorm:"size:64;index:idx_weekly_off_day;not null" json:"practitionerId"`
	DayOfWeek      int     `gorm:"index:idx_weekly_off_day;not null" json:"day_of_week"` // 0=Sunday...6=Saturday
	StartDate      string  `gorm:"size:10;not null" json:"start_date"`
	EndDate        *string `gorm:"size:10" json:"end_date,omitempty"`
}

// BeforeCreate hook to generate UUID
func (w *WeeklyOff) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for WeeklyOff model
func (WeeklyOff) TableName() string {
	return "weekly_offs"
}

// DayName returns the name of the day
func (w *WeeklyOff) DayName() string {
	if w.DayOfWeek >= 0 && w.DayOfWeek < 7 {
		return time.Weekday(w.DayOfWeek).String()
	}
	return ""
}

// WeeklyOffException restores a normal working day that a WeeklyOff rule
// would otherwise take off
type WeeklyOffException struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PractitionerID string `gorm:"size:64;index:idx_weekly_off_exception_day;not null" json:"practitionerId"`
	Date           string `gorm:"size:10;index:idx_weekly_off_exception_day;not null" json:"date"`
}

// BeforeCreate hook to generate UUID
func (e *WeeklyOffException) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for WeeklyOffException model
func (WeeklyOffException) TableName() string {
	return "weekly_off_exceptions"
}
