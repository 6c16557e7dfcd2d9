package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment status constants
const (
	AppointmentStatusScheduled = "SCHEDULED"
	AppointmentStatusCancelled = "CANCELLED"
)

// Appointment is a booked period on one date. Appointments of the same
// practitioner and date may overlap and are stored in no particular order.
type Appointment struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PractitionerID string `gorm:"size:64;index:idx_appointment_day;not null" json:"practitionerId"`
	Date           string `gorm:"size:10;index:idx_appointment_day;not null" json:"date"` // "2025-03-10"
	StartTime      string `gorm:"size:5;not null" json:"start_time"`
	EndTime        string `gorm:"size:5;not null" json:"end_time"`
	PatientName    string `gorm:"size:200" json:"patient_name,omitempty"`
	Status         string `gorm:"size:20;default:'SCHEDULED';index" json:"status"`
}

// BeforeCreate hook to generate UUID
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Status == "" {
		a.Status = AppointmentStatusScheduled
	}
	return nil
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// IsCancellable checks if the appointment can be cancelled
func (a *Appointment) IsCancellable() bool {
	return a.Status == AppointmentStatusScheduled
}
