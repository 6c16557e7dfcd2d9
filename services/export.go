package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"clinic_availability_go/services/availability"
)

// MaxExportDays caps the number of dates in one availability workbook
const MaxExportDays = 31

// SlotResolver is satisfied by *availability.Resolver
type SlotResolver interface {
	Resolve(ctx context.Context, practitionerID, date string) (*availability.Result, error)
}

// ExportAvailabilityWorkbook resolves `days` consecutive dates starting at
// `from` and writes them to an xlsx workbook: a summary sheet with one row
// per date and a slots sheet with one row per available slot.
func ExportAvailabilityWorkbook(ctx context.Context, resolver SlotResolver, practitionerID string, from time.Time, days int) (*bytes.Buffer, error) {
	if days < 1 || days > MaxExportDays {
		return nil, validationError("days must be between 1 and %d", MaxExportDays)
	}

	results := make([]*availability.Result, 0, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i).Format(availability.DateLayout)
		res, err := resolver.Resolve(ctx, practitionerID, date)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	f := excelize.NewFile()
	defer f.Close()

	// --- Summary Sheet ---
	sheetSummary := "Summary"
	f.SetSheetName("Sheet1", sheetSummary)

	f.SetCellValue(sheetSummary, "A1", fmt.Sprintf("Availability for %s", practitionerID))
	titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	f.SetCellStyle(sheetSummary, "A1", "A1", titleStyle)

	summaryHeaders := []string{"Date", "Weekday", "Availability", "Slots", "Free Minutes"}
	for i, header := range summaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheetSummary, cell, header)
	}

	// --- Slots Sheet ---
	sheetSlots := "Slots"
	f.NewSheet(sheetSlots)
	slotHeaders := []string{"Date", "Start", "End", "Minutes"}
	for i, header := range slotHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetSlots, cell, header)
	}

	slotRow := 2
	for i, res := range results {
		row := i + 4
		day, _ := availability.ParseDate(res.Date)

		free := 0
		for _, slot := range res.AvailableSlots {
			minutes := slotMinutes(slot)
			free += minutes

			f.SetCellValue(sheetSlots, fmt.Sprintf("A%d", slotRow), res.Date)
			f.SetCellValue(sheetSlots, fmt.Sprintf("B%d", slotRow), slot.StartTime)
			f.SetCellValue(sheetSlots, fmt.Sprintf("C%d", slotRow), slot.EndTime)
			f.SetCellValue(sheetSlots, fmt.Sprintf("D%d", slotRow), minutes)
			slotRow++
		}

		f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", row), res.Date)
		f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", row), day.Weekday().String())
		f.SetCellValue(sheetSummary, fmt.Sprintf("C%d", row), res.Availability)
		f.SetCellValue(sheetSummary, fmt.Sprintf("D%d", row), len(res.AvailableSlots))
		f.SetCellValue(sheetSummary, fmt.Sprintf("E%d", row), free)
	}

	// Header Style
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	f.SetCellStyle(sheetSummary, "A3", "E3", headerStyle)
	f.SetCellStyle(sheetSlots, "A1", "D1", headerStyle)
	f.SetColWidth(sheetSummary, "A", "E", 16)
	f.SetColWidth(sheetSlots, "A", "D", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel buffer: %w", err)
	}

	return buf, nil
}

func slotMinutes(slot availability.Slot) int {
	iv, err := availability.ParseInterval(slot.StartTime, slot.EndTime)
	if err != nil {
		return 0
	}
	return iv.Duration()
}
