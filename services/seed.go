package services

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic_availability_go/models"
)

// samplePractitioners are the practitioners created by SeedSampleData
var samplePractitioners = []models.Practitioner{
	{PractitionerID: "DOC001", Name: "Dr. John Smith", StartTime: "09:00", EndTime: "17:00"},
	{PractitionerID: "DOC002", Name: "Dr. Sarah Johnson", StartTime: "08:00", EndTime: "16:00"},
	{PractitionerID: "DOC003", Name: "Dr. Michael Lee", StartTime: "10:00", EndTime: "18:00"},
}

var sampleLeaveTypes = []string{"Sick", "Annual", "Personal"}

// SeedSampleData creates the sample practitioners and leave types.
// Existing rows are left untouched, so it is safe to run on every start.
func SeedSampleData(db *gorm.DB, logger zerolog.Logger) error {
	created := 0

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, sample := range samplePractitioners {
			p := sample
			var existing models.Practitioner
			if err := tx.Where("practitioner_id = ?", p.PractitionerID).First(&existing).Error; err == nil {
				continue
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			logger.Debug().Str("practitioner_id", p.PractitionerID).Msg("seeded practitioner")
			created++
		}

		for _, name := range sampleLeaveTypes {
			var existing models.LeaveType
			if err := tx.Where("name = ?", name).First(&existing).Error; err == nil {
				continue
			}
			if err := tx.Create(&models.LeaveType{Name: name}).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return err
	}

	if created == 0 {
		logger.Debug().Msg("sample data already present, skipping seed")
		return nil
	}

	invalidateAllConstraints()
	logger.Info().Int("rows", created).Msg("seeded sample data")
	return nil
}
