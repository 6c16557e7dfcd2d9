package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"clinic_availability_go/models"
)

// CreateAppointment books a time range after checking for conflicts
func CreateAppointment(db *gorm.DB, apt *models.Appointment) error {
	date, err := normalizeDate(apt.Date)
	if err != nil {
		return err
	}
	start, end, err := normalizeRange(apt.StartTime, apt.EndTime)
	if err != nil {
		return err
	}
	apt.Date, apt.StartTime, apt.EndTime = date, start, end
	apt.PatientName = SanitizeText(apt.PatientName)

	if err := requirePractitioner(db, apt.PractitionerID); err != nil {
		return err
	}

	hasConflict, err := CheckAppointmentConflict(db, apt.PractitionerID, apt.Date, apt.StartTime, apt.EndTime, "")
	if err != nil {
		return err
	}
	if hasConflict {
		return ErrAppointmentConflict
	}

	if err := db.Create(apt).Error; err != nil {
		return err
	}
	invalidateConstraints(apt.PractitionerID)
	return nil
}

// GetAppointmentByID fetches a single appointment
func GetAppointmentByID(db *gorm.DB, id string) (*models.Appointment, error) {
	var apt models.Appointment
	err := db.First(&apt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("appointment %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &apt, nil
}

// GetPractitionerAppointments fetches appointments of a practitioner, on one
// date when date is not empty
func GetPractitionerAppointments(db *gorm.DB, practitionerID, date string) ([]models.Appointment, error) {
	query := db.Where("practitioner_id = ?", practitionerID)
	if date != "" {
		query = query.Where("date = ?", date)
	}

	var appointments []models.Appointment
	err := query.Order("date asc, start_time asc").Find(&appointments).Error
	return appointments, err
}

// CancelAppointment cancels an appointment, freeing its time
func CancelAppointment(db *gorm.DB, id string) error {
	apt, err := GetAppointmentByID(db, id)
	if err != nil {
		return err
	}
	if !apt.IsCancellable() {
		return validationError("appointment cannot be cancelled")
	}

	err = db.Model(&models.Appointment{}).Where("id = ?", id).
		Update("status", models.AppointmentStatusCancelled).Error
	if err != nil {
		return err
	}
	invalidateConstraints(apt.PractitionerID)
	return nil
}

// CheckAppointmentConflict checks if a time range overlaps a scheduled appointment
func CheckAppointmentConflict(db *gorm.DB, practitionerID, date, startTime, endTime, excludeID string) (bool, error) {
	var count int64
	query := db.Model(&models.Appointment{}).
		Where("practitioner_id = ? AND date = ?", practitionerID, date).
		Where("status <> ?", models.AppointmentStatusCancelled).
		Where("start_time < ? AND end_time > ?", endTime, startTime) // Overlap check

	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}

	err := query.Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
