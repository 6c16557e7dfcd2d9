package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Holiday is an organization-wide day off
type Holiday struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Date string `gorm:"size:10;uniqueIndex;not null" json:"date"`
	Name string `gorm:"size:200;not null" json:"name"`

	// Relationships
	Exemptions []HolidayExemption `gorm:"foreignKey:HolidayID" json:"exemptions,omitempty"`
}

// BeforeCreate hook to generate UUID
func (h *Holiday) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Holiday model
func (Holiday) TableName() string {
	return "holidays"
}

// ExemptIDs returns the practitioner IDs that keep working on this holiday
func (h *Holiday) ExemptIDs() []string {
	ids := make([]string, 0, len(h.Exemptions))
	for _, e := range h.Exemptions {
		ids = append(ids, e.PractitionerID)
	}
	return ids
}

// HolidayExemption lets one practitioner work on an organization holiday
type HolidayExemption struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	HolidayID      string `gorm:"type:uuid;uniqueIndex:idx_holiday_exemption;not null" json:"holiday_id"`
	PractitionerID string `gorm:"size:64;uniqueIndex:idx_holiday_exemption;not null" json:"practitionerId"`
}

// BeforeCreate hook to generate UUID
func (e *HolidayExemption) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for HolidayExemption model
func (HolidayExemption) TableName() string {
	return "holiday_exemptions"
}

// PractitionerHoliday is a day off for one practitioner only
type PractitionerHoliday struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PractitionerID string `gorm:"size:64;index:idx_practitioner_holiday_day;not null" json:"practitionerId"`
	Date           string `gorm:"size:10;index:idx_practitioner_holiday_day;not null" json:"date"`
	Reason         string `gorm:"size:200" json:"reason,omitempty"`
}

// BeforeCreate hook to generate UUID
func (h *PractitionerHoliday) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for PractitionerHoliday model
func (PractitionerHoliday) TableName() string {
	return "practitioner_holidays"
}
