package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"clinic_availability_go/models"
	"clinic_availability_go/services/availability"
)

func TestExportAvailabilityWorkbook(t *testing.T) {
	db := setupServiceTestDB(t)
	createTestPractitioner(t, db, "DOC001", "09:00", "12:00")
	require.NoError(t, CreateAppointment(db, &models.Appointment{PractitionerID: "DOC001", Date: "2025-03-10", StartTime: "10:00", EndTime: "11:00"}))
	require.NoError(t, CreateLeave(db, &models.Leave{PractitionerID: "DOC001", Date: "2025-03-11"}))

	resolver, _, err := NewAvailabilityResolver(db, AvailabilityOptions{Policy: availability.DefaultPolicy()}, zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Workbook content", func(t *testing.T) {
		buf, err := ExportAvailabilityWorkbook(ctx, resolver, "DOC001", from, 2)
		require.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"Summary", "Slots"}, f.GetSheetList())

		date, _ := f.GetCellValue("Summary", "A4")
		weekday, _ := f.GetCellValue("Summary", "B4")
		status, _ := f.GetCellValue("Summary", "C4")
		slots, _ := f.GetCellValue("Summary", "D4")
		free, _ := f.GetCellValue("Summary", "E4")
		assert.Equal(t, "2025-03-10", date)
		assert.Equal(t, "Monday", weekday)
		assert.Equal(t, availability.StatusAvailable, status)
		assert.Equal(t, "2", slots)
		assert.Equal(t, "120", free)

		status, _ = f.GetCellValue("Summary", "C5")
		assert.Equal(t, availability.StatusNotAvailable, status)

		rows, err := f.GetRows("Slots")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"2025-03-10", "09:00", "10:00", "60"}, rows[1])
		assert.Equal(t, []string{"2025-03-10", "11:00", "12:00", "60"}, rows[2])
	})

	t.Run("Day range is capped", func(t *testing.T) {
		_, err := ExportAvailabilityWorkbook(ctx, resolver, "DOC001", from, 0)
		assert.ErrorIs(t, err, ErrValidation)
		_, err = ExportAvailabilityWorkbook(ctx, resolver, "DOC001", from, MaxExportDays+1)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Unknown practitioner", func(t *testing.T) {
		_, err := ExportAvailabilityWorkbook(ctx, resolver, "DOC999", from, 1)
		assert.ErrorIs(t, err, availability.ErrPractitionerNotFound)
	})
}
