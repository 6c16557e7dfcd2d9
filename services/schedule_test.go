package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic_availability_go/models"
)

func TestScheduleService(t *testing.T) {
	db := setupServiceTestDB(t)
	createTestPractitioner(t, db, "DOC001", "09:00", "17:00")
	createTestPractitioner(t, db, "DOC002", "08:00", "16:00")

	t.Run("Daily breaks", func(t *testing.T) {
		require.NoError(t, CreateDailyBreak(db, &models.DailyBreak{PractitionerID: "DOC001", StartTime: "15:00", EndTime: "15:15"}))
		require.NoError(t, CreateDailyBreak(db, &models.DailyBreak{PractitionerID: "DOC001", StartTime: "12:00", EndTime: "13:00", Label: "<i>Lunch</i>"}))

		breaks, err := GetDailyBreaks(db, "DOC001")
		require.NoError(t, err)
		require.Len(t, breaks, 2)
		assert.Equal(t, "12:00", breaks[0].StartTime)
		assert.Equal(t, "Lunch", breaks[0].Label)

		assert.ErrorIs(t, CreateDailyBreak(db, &models.DailyBreak{PractitionerID: "DOC001", StartTime: "13:00", EndTime: "12:00"}), ErrValidation)
		assert.ErrorIs(t, CreateDailyBreak(db, &models.DailyBreak{PractitionerID: "DOC999", StartTime: "12:00", EndTime: "13:00"}), ErrNotFound)
	})

	t.Run("Exception breaks", func(t *testing.T) {
		b := &models.ExceptionBreak{PractitionerID: "DOC001", Date: "2025-03-10", StartTime: "9:00", EndTime: "9:30"}
		require.NoError(t, CreateExceptionBreak(db, b))
		assert.Equal(t, "09:00", b.StartTime)
		assert.Equal(t, "09:30", b.EndTime)

		assert.ErrorIs(t, CreateExceptionBreak(db, &models.ExceptionBreak{PractitionerID: "DOC001", Date: "10-03-2025", StartTime: "09:00", EndTime: "09:30"}), ErrValidation)
	})

	t.Run("Leave types and leaves", func(t *testing.T) {
		sick := &models.LeaveType{Name: "Sick"}
		require.NoError(t, CreateLeaveType(db, sick))
		assert.ErrorIs(t, CreateLeaveType(db, &models.LeaveType{Name: "Sick"}), ErrAlreadyExists)
		assert.ErrorIs(t, CreateLeaveType(db, &models.LeaveType{Name: "  "}), ErrValidation)

		types, err := GetLeaveTypes(db)
		require.NoError(t, err)
		assert.Len(t, types, 1)

		require.NoError(t, CreateLeave(db, &models.Leave{PractitionerID: "DOC001", Date: "2025-03-10", LeaveTypeID: &sick.ID}))
		require.NoError(t, CreateLeave(db, &models.Leave{PractitionerID: "DOC001", Date: "2025-03-11"}))

		missing := "no-such-type"
		assert.ErrorIs(t, CreateLeave(db, &models.Leave{PractitionerID: "DOC001", Date: "2025-03-12", LeaveTypeID: &missing}), ErrNotFound)
	})

	t.Run("Holidays", func(t *testing.T) {
		require.NoError(t, CreateHoliday(db, &models.Holiday{Date: "2025-12-25", Name: "Christmas"}, []string{"DOC001"}))
		assert.ErrorIs(t, CreateHoliday(db, &models.Holiday{Date: "2025-12-25", Name: "Again"}, nil), ErrAlreadyExists)
		assert.ErrorIs(t, CreateHoliday(db, &models.Holiday{Date: "2026-01-01", Name: "New Year"}, []string{"DOC999"}), ErrNotFound)
		assert.ErrorIs(t, CreateHoliday(db, &models.Holiday{Date: "2026-01-01"}, nil), ErrValidation)

		// The failed transaction left nothing behind
		_, err := GetHolidayByDate(db, "2026-01-01")
		assert.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, AddHolidayExemption(db, "2025-12-25", "DOC002"))
		require.NoError(t, AddHolidayExemption(db, "2025-12-25", "DOC002"))

		holiday, err := GetHolidayByDate(db, "2025-12-25")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"DOC001", "DOC002"}, holiday.ExemptIDs())

		assert.ErrorIs(t, AddHolidayExemption(db, "2025-11-11", "DOC002"), ErrNotFound)
	})

	t.Run("Practitioner holidays", func(t *testing.T) {
		h := &models.PractitionerHoliday{PractitionerID: "DOC002", Date: "2025-05-05", Reason: "Conference"}
		require.NoError(t, CreatePractitionerHoliday(db, h))
		assert.NotEmpty(t, h.ID)
	})

	t.Run("Weekly offs", func(t *testing.T) {
		require.NoError(t, CreateWeeklyOff(db, &models.WeeklyOff{PractitionerID: "DOC001", DayOfWeek: 6, StartDate: "2025-01-01"}))

		end := "2024-12-31"
		assert.ErrorIs(t, CreateWeeklyOff(db, &models.WeeklyOff{PractitionerID: "DOC001", DayOfWeek: 6, StartDate: "2025-01-01", EndDate: &end}), ErrValidation)
		assert.ErrorIs(t, CreateWeeklyOff(db, &models.WeeklyOff{PractitionerID: "DOC001", DayOfWeek: 7, StartDate: "2025-01-01"}), ErrValidation)

		require.NoError(t, CreateWeeklyOffException(db, &models.WeeklyOffException{PractitionerID: "DOC001", Date: "2025-03-15"}))
		assert.ErrorIs(t, CreateWeeklyOffException(db, &models.WeeklyOffException{PractitionerID: "DOC999", Date: "2025-03-15"}), ErrNotFound)
	})
}
