package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"clinic_availability_go/models"
)

// GetPractitioners fetches all practitioners
func GetPractitioners(db *gorm.DB) ([]models.Practitioner, error) {
	var practitioners []models.Practitioner
	err := db.Order("practitioner_id").Find(&practitioners).Error
	return practitioners, err
}

// GetPractitionerByID fetches a practitioner by its external ID
func GetPractitionerByID(db *gorm.DB, practitionerID string) (*models.Practitioner, error) {
	var practitioner models.Practitioner
	err := db.Where("practitioner_id = ?", practitionerID).First(&practitioner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("practitioner %s: %w", practitionerID, ErrNotFound)
		}
		return nil, err
	}
	return &practitioner, nil
}

// CreatePractitioner validates and stores a new practitioner
func CreatePractitioner(db *gorm.DB, p *models.Practitioner) error {
	p.PractitionerID = strings.TrimSpace(p.PractitionerID)
	p.Name = SanitizeText(p.Name)
	if p.PractitionerID == "" || p.Name == "" {
		return validationError("practitioner ID and name are required")
	}

	start, end, err := normalizeRange(p.StartTime, p.EndTime)
	if err != nil {
		return err
	}
	p.StartTime, p.EndTime = start, end

	var count int64
	if err := db.Model(&models.Practitioner{}).Where("practitioner_id = ?", p.PractitionerID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("practitioner %s: %w", p.PractitionerID, ErrAlreadyExists)
	}

	return db.Create(p).Error
}

// UpdateWorkingHours changes a practitioner's daily working window
func UpdateWorkingHours(db *gorm.DB, practitionerID, startTime, endTime string) (*models.Practitioner, error) {
	start, end, err := normalizeRange(startTime, endTime)
	if err != nil {
		return nil, err
	}

	practitioner, err := GetPractitionerByID(db, practitionerID)
	if err != nil {
		return nil, err
	}

	err = db.Model(practitioner).Updates(map[string]interface{}{
		"start_time": start,
		"end_time":   end,
	}).Error
	if err != nil {
		return nil, err
	}
	practitioner.StartTime, practitioner.EndTime = start, end

	invalidateConstraints(practitionerID)
	return practitioner, nil
}

func requirePractitioner(db *gorm.DB, practitionerID string) error {
	_, err := GetPractitionerByID(db, practitionerID)
	return err
}
