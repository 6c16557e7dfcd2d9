package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"clinic_availability_go/services"
	"clinic_availability_go/services/availability"
)

const defaultExportDays = 7

// GetAvailableSlotsHandler returns the free slots of a practitioner on a date
func GetAvailableSlotsHandler(c echo.Context) error {
	if services.Availability == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Availability is not initialized")
	}

	result, err := services.Availability.Resolve(c.Request().Context(), c.Param("id"), c.Param("date"))
	if err != nil {
		return toHTTPError(err, "Failed to resolve availability")
	}
	return c.JSON(http.StatusOK, result)
}

// ExportAvailabilityHandler downloads an xlsx workbook of a practitioner's
// availability for ?days= dates starting at ?from=
func ExportAvailabilityHandler(c echo.Context) error {
	if services.Availability == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Availability is not initialized")
	}

	from := time.Now().UTC()
	if fromStr := c.QueryParam("from"); fromStr != "" {
		parsed, err := availability.ParseDate(fromStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid from date format (use YYYY-MM-DD)")
		}
		from = parsed
	}

	days := defaultExportDays
	if daysStr := c.QueryParam("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "days must be a number")
		}
		days = parsed
	}

	practitionerID := c.Param("id")
	buf, err := services.ExportAvailabilityWorkbook(c.Request().Context(), services.Availability, practitionerID, from, days)
	if err != nil {
		return toHTTPError(err, "Failed to export availability")
	}

	filename := fmt.Sprintf("availability_%s_%s.xlsx", practitionerID, from.Format(availability.DateLayout))
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+filename)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
