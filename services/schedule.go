package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"clinic_availability_go/models"
)

// CreateDailyBreak adds a break repeated every day
func CreateDailyBreak(db *gorm.DB, b *models.DailyBreak) error {
	start, end, err := normalizeRange(b.StartTime, b.EndTime)
	if err != nil {
		return err
	}
	b.StartTime, b.EndTime = start, end
	b.Label = SanitizeText(b.Label)

	if err := requirePractitioner(db, b.PractitionerID); err != nil {
		return err
	}
	if err := db.Create(b).Error; err != nil {
		return err
	}
	invalidateConstraints(b.PractitionerID)
	return nil
}

// GetDailyBreaks fetches the daily breaks of a practitioner
func GetDailyBreaks(db *gorm.DB, practitionerID string) ([]models.DailyBreak, error) {
	var breaks []models.DailyBreak
	err := db.Where("practitioner_id = ?", practitionerID).Order("start_time").Find(&breaks).Error
	return breaks, err
}

// CreateExceptionBreak adds a one-off break on a date
func CreateExceptionBreak(db *gorm.DB, b *models.ExceptionBreak) error {
	date, err := normalizeDate(b.Date)
	if err != nil {
		return err
	}
	start, end, err := normalizeRange(b.StartTime, b.EndTime)
	if err != nil {
		return err
	}
	b.Date, b.StartTime, b.EndTime = date, start, end
	b.Reason = SanitizeText(b.Reason)

	if err := requirePractitioner(db, b.PractitionerID); err != nil {
		return err
	}
	if err := db.Create(b).Error; err != nil {
		return err
	}
	invalidateConstraints(b.PractitionerID)
	return nil
}

// GetLeaveTypes fetches all leave types
func GetLeaveTypes(db *gorm.DB) ([]models.LeaveType, error) {
	var types []models.LeaveType
	err := db.Order("name").Find(&types).Error
	return types, err
}

// CreateLeave records a day of leave
func CreateLeave(db *gorm.DB, l *models.Leave) error {
	date, err := normalizeDate(l.Date)
	if err != nil {
		return err
	}
	l.Date = date

	if err := requirePractitioner(db, l.PractitionerID); err != nil {
		return err
	}
	if l.LeaveTypeID != nil {
		var leaveType models.LeaveType
		if err := db.First(&leaveType, "id = ?", *l.LeaveTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("leave type %s: %w", *l.LeaveTypeID, ErrNotFound)
			}
			return err
		}
	}

	if err := db.Create(l).Error; err != nil {
		return err
	}
	invalidateConstraints(l.PractitionerID)
	return nil
}

// CreatePractitionerHoliday records a personal day off
func CreatePractitionerHoliday(db *gorm.DB, h *models.PractitionerHoliday) error {
	date, err := normalizeDate(h.Date)
	if err != nil {
		return err
	}
	h.Date = date
	h.Reason = SanitizeText(h.Reason)

	if err := requirePractitioner(db, h.PractitionerID); err != nil {
		return err
	}
	if err := db.Create(h).Error; err != nil {
		return err
	}
	invalidateConstraints(h.PractitionerID)
	return nil
}

// CreateHoliday declares an organization holiday, exempting the given practitioners
func CreateHoliday(db *gorm.DB, h *models.Holiday, exemptIDs []string) error {
	date, err := normalizeDate(h.Date)
	if err != nil {
		return err
	}
	h.Date = date
	h.Name = SanitizeText(h.Name)
	if h.Name == "" {
		return validationError("holiday name is required")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Holiday{}).Where("date = ?", h.Date).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("holiday on %s: %w", h.Date, ErrAlreadyExists)
		}

		for _, id := range exemptIDs {
			id = strings.TrimSpace(id)
			if err := requirePractitioner(tx, id); err != nil {
				return err
			}
			h.Exemptions = append(h.Exemptions, models.HolidayExemption{PractitionerID: id})
		}

		return tx.Create(h).Error
	})
	if err != nil {
		return err
	}

	invalidateAllConstraints()
	return nil
}

// GetHolidayByDate fetches the holiday on a date with its exemptions
func GetHolidayByDate(db *gorm.DB, date string) (*models.Holiday, error) {
	var holiday models.Holiday
	err := db.Preload("Exemptions").Where("date = ?", date).First(&holiday).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("holiday on %s: %w", date, ErrNotFound)
		}
		return nil, err
	}
	return &holiday, nil
}

// AddHolidayExemption lets a practitioner work on an existing holiday
func AddHolidayExemption(db *gorm.DB, date, practitionerID string) error {
	holiday, err := GetHolidayByDate(db, date)
	if err != nil {
		return err
	}
	if err := requirePractitioner(db, practitionerID); err != nil {
		return err
	}

	for _, id := range holiday.ExemptIDs() {
		if id == practitionerID {
			return nil
		}
	}

	exemption := &models.HolidayExemption{HolidayID: holiday.ID, PractitionerID: practitionerID}
	if err := db.Create(exemption).Error; err != nil {
		return err
	}
	invalidateConstraints(practitionerID)
	return nil
}

// CreateWeeklyOff adds a recurring day off
func CreateWeeklyOff(db *gorm.DB, w *models.WeeklyOff) error {
	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		return validationError("day of week must be between 0 (Sunday) and 6 (Saturday)")
	}
	start, err := normalizeDate(w.StartDate)
	if err != nil {
		return err
	}
	w.StartDate = start

	if w.EndDate != nil {
		end, err := normalizeDate(*w.EndDate)
		if err != nil {
			return err
		}
		if end < start {
			return validationError("end date must not be before start date")
		}
		w.EndDate = &end
	}

	if err := requirePractitioner(db, w.PractitionerID); err != nil {
		return err
	}
	if err := db.Create(w).Error; err != nil {
		return err
	}
	invalidateConstraints(w.PractitionerID)
	return nil
}

// CreateWeeklyOffException restores a single date that a weekly day off would take
func CreateWeeklyOffException(db *gorm.DB, e *models.WeeklyOffException) error {
	date, err := normalizeDate(e.Date)
	if err != nil {
		return err
	}
	e.Date = date

	if err := requirePractitioner(db, e.PractitionerID); err != nil {
		return err
	}
	if err := db.Create(e).Error; err != nil {
		return err
	}
	invalidateConstraints(e.PractitionerID)
	return nil
}

// CreateLeaveType adds a leave classification
func CreateLeaveType(db *gorm.DB, lt *models.LeaveType) error {
	lt.Name = SanitizeText(lt.Name)
	if lt.Name == "" {
		return validationError("leave type name is required")
	}

	var count int64
	if err := db.Model(&models.LeaveType{}).Where("name = ?", lt.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("leave type %s: %w", lt.Name, ErrAlreadyExists)
	}
	return db.Create(lt).Error
}
