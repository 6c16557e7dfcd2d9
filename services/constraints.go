package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"clinic_availability_go/models"
	"clinic_availability_go/services/availability"
)

// ConstraintStore loads availability constraints from the database. All
// categories are read inside one transaction so the snapshot is consistent.
type ConstraintStore struct {
	db *gorm.DB
}

// NewConstraintStore creates a ConstraintStore
func NewConstraintStore(database *gorm.DB) *ConstraintStore {
	return &ConstraintStore{db: database}
}

// FetchConstraints implements availability.ConstraintFetcher
func (s *ConstraintStore) FetchConstraints(ctx context.Context, practitionerID, date string) (*availability.Constraints, error) {
	day, err := availability.ParseDate(date)
	if err != nil {
		return nil, err
	}

	c := &availability.Constraints{PractitionerID: practitionerID, Date: date}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		var practitioner models.Practitioner
		if err := tx.Where("practitioner_id = ?", practitionerID).First(&practitioner).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", availability.ErrPractitionerNotFound, practitionerID)
			}
			return fmt.Errorf("load practitioner: %w", err)
		}
		c.WorkingHours = availability.TimeRange{StartTime: practitioner.StartTime, EndTime: practitioner.EndTime}

		// 1. Appointments on the date
		if c.Appointments, err = loadRanges(tx, &models.Appointment{},
			"practitioner_id = ? AND date = ? AND status <> ?", practitionerID, date, models.AppointmentStatusCancelled); err != nil {
			return fmt.Errorf("load appointments: %w", err)
		}

		// 2. Leave
		if c.OnLeave, err = exists(tx, &models.Leave{}, "practitioner_id = ? AND date = ?", practitionerID, date); err != nil {
			return fmt.Errorf("load leave: %w", err)
		}

		// 3. Daily breaks
		if c.DailyBreaks, err = loadRanges(tx, &models.DailyBreak{}, "practitioner_id = ?", practitionerID); err != nil {
			return fmt.Errorf("load daily breaks: %w", err)
		}

		// 4. Exception breaks for the date
		if c.ExceptionBreaks, err = loadRanges(tx, &models.ExceptionBreak{},
			"practitioner_id = ? AND date = ?", practitionerID, date); err != nil {
			return fmt.Errorf("load exception breaks: %w", err)
		}

		// 5. Organization holidays and their exemptions
		var holidays []models.Holiday
		if err := tx.Preload("Exemptions").Where("date = ?", date).Find(&holidays).Error; err != nil {
			return fmt.Errorf("load holidays: %w", err)
		}
		rules := make([]availability.HolidayRule, 0, len(holidays))
		for i := range holidays {
			rules = append(rules, availability.HolidayRule{Date: holidays[i].Date, Exempt: holidays[i].ExemptIDs()})
		}
		c.Holiday = availability.ResolveHoliday(rules, practitionerID, date)

		// 6. Practitioner specific holiday
		if c.PractitionerHoliday, err = exists(tx, &models.PractitionerHoliday{},
			"practitioner_id = ? AND date = ?", practitionerID, date); err != nil {
			return fmt.Errorf("load practitioner holidays: %w", err)
		}

		// 7. Weekly day off and its exception
		var offs []models.WeeklyOff
		if err := tx.Where("practitioner_id = ? AND day_of_week = ?", practitionerID, int(day.Weekday())).
			Find(&offs).Error; err != nil {
			return fmt.Errorf("load weekly offs: %w", err)
		}
		weekly := make([]availability.WeeklyOffRule, 0, len(offs))
		for _, o := range offs {
			weekly = append(weekly, availability.WeeklyOffRule{DayOfWeek: o.DayOfWeek, StartDate: o.StartDate, EndDate: o.EndDate})
		}
		c.WeeklyOff.Matched = availability.WeeklyOffMatches(weekly, day)

		if c.WeeklyOff.Excepted, err = exists(tx, &models.WeeklyOffException{},
			"practitioner_id = ? AND date = ?", practitionerID, date); err != nil {
			return fmt.Errorf("load weekly off exceptions: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

func loadRanges(tx *gorm.DB, model interface{}, query string, args ...interface{}) ([]availability.TimeRange, error) {
	var ranges []availability.TimeRange
	err := tx.Model(model).
		Select("start_time", "end_time").
		Where(query, args...).
		Order("start_time").
		Scan(&ranges).Error
	return ranges, err
}

func exists(tx *gorm.DB, model interface{}, query string, args ...interface{}) (bool, error) {
	var count int64
	err := tx.Model(model).Where(query, args...).Count(&count).Error
	return count > 0, err
}
