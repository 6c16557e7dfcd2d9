package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveType classifies leave records ("Sick", "Annual", ...)
type LeaveType struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

// BeforeCreate hook to generate UUID
func (l *LeaveType) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for LeaveType model
func (LeaveType) TableName() string {
	return "leave_types"
}

// Leave takes a practitioner off for a whole date
type Leave struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PractitionerID string  `gorm:"size:64;index:idx_leave_day;not null" json:"practitionerId"`
	Date           string  `gorm:"size:10;index:idx_leave_day;not null" json:"date"`
	LeaveTypeID    *string `gorm:"type:uuid;index" json:"leave_type_id,omitempty"`

	// Relationships
	LeaveType *LeaveType `gorm:"foreignKey:LeaveTypeID" json:"leave_type,omitempty"`
}

// BeforeCreate hook to generate UUID
func (l *Leave) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Leave model
func (Leave) TableName() string {
	return "leaves"
}
