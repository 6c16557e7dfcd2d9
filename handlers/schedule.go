package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clinic_availability_go/db"
	"clinic_availability_go/models"
	"clinic_availability_go/services"
)

type timeRangeRequest struct {
	StartTime string `json:"start_time" form:"start_time"`
	EndTime   string `json:"end_time" form:"end_time"`
}

// GetDailyBreaksHandler lists a practitioner's daily breaks
func GetDailyBreaksHandler(c echo.Context) error {
	practitionerID := c.Param("id")
	if _, err := services.GetPractitionerByID(db.DB, practitionerID); err != nil {
		return toHTTPError(err, "Failed to fetch practitioner")
	}

	breaks, err := services.GetDailyBreaks(db.DB, practitionerID)
	if err != nil {
		return toHTTPError(err, "Failed to fetch daily breaks")
	}
	return c.JSON(http.StatusOK, breaks)
}

// CreateDailyBreakHandler adds a break repeated every day
func CreateDailyBreakHandler(c echo.Context) error {
	var req struct {
		timeRangeRequest
		Label string `json:"label" form:"label"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	b := &models.DailyBreak{
		PractitionerID: c.Param("id"),
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Label:          req.Label,
	}
	if err := services.CreateDailyBreak(db.DB, b); err != nil {
		return toHTTPError(err, "Failed to create daily break")
	}
	return c.JSON(http.StatusCreated, b)
}

// CreateExceptionBreakHandler adds a one-off break on a date
func CreateExceptionBreakHandler(c echo.Context) error {
	var req struct {
		timeRangeRequest
		Date   string `json:"date" form:"date"`
		Reason string `json:"reason" form:"reason"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	b := &models.ExceptionBreak{
		PractitionerID: c.Param("id"),
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Reason:         req.Reason,
	}
	if err := services.CreateExceptionBreak(db.DB, b); err != nil {
		return toHTTPError(err, "Failed to create exception break")
	}
	return c.JSON(http.StatusCreated, b)
}

// CreateLeaveHandler records a day of leave
func CreateLeaveHandler(c echo.Context) error {
	var req struct {
		Date        string  `json:"date" form:"date"`
		LeaveTypeID *string `json:"leave_type_id" form:"leave_type_id"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	leave := &models.Leave{
		PractitionerID: c.Param("id"),
		Date:           req.Date,
		LeaveTypeID:    req.LeaveTypeID,
	}
	if err := services.CreateLeave(db.DB, leave); err != nil {
		return toHTTPError(err, "Failed to create leave")
	}
	return c.JSON(http.StatusCreated, leave)
}

// GetLeaveTypesHandler lists leave types
func GetLeaveTypesHandler(c echo.Context) error {
	types, err := services.GetLeaveTypes(db.DB)
	if err != nil {
		return toHTTPError(err, "Failed to fetch leave types")
	}
	return c.JSON(http.StatusOK, types)
}

// CreatePractitionerHolidayHandler records a personal day off
func CreatePractitionerHolidayHandler(c echo.Context) error {
	var req struct {
		Date   string `json:"date" form:"date"`
		Reason string `json:"reason" form:"reason"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	h := &models.PractitionerHoliday{
		PractitionerID: c.Param("id"),
		Date:           req.Date,
		Reason:         req.Reason,
	}
	if err := services.CreatePractitionerHoliday(db.DB, h); err != nil {
		return toHTTPError(err, "Failed to create practitioner holiday")
	}
	return c.JSON(http.StatusCreated, h)
}

// CreateWeeklyOffHandler adds a recurring day off
func CreateWeeklyOffHandler(c echo.Context) error {
	var req struct {
		DayOfWeek *int    `json:"day_of_week" form:"day_of_week"`
		StartDate string  `json:"start_date" form:"start_date"`
		EndDate   *string `json:"end_date" form:"end_date"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.DayOfWeek == nil || req.StartDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "day_of_week and start_date are required")
	}

	w := &models.WeeklyOff{
		PractitionerID: c.Param("id"),
		DayOfWeek:      *req.DayOfWeek,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}
	if err := services.CreateWeeklyOff(db.DB, w); err != nil {
		return toHTTPError(err, "Failed to create weekly off")
	}
	return c.JSON(http.StatusCreated, w)
}

// CreateWeeklyOffExceptionHandler restores a date a weekly day off would take
func CreateWeeklyOffExceptionHandler(c echo.Context) error {
	var req struct {
		Date string `json:"date" form:"date"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	e := &models.WeeklyOffException{PractitionerID: c.Param("id"), Date: req.Date}
	if err := services.CreateWeeklyOffException(db.DB, e); err != nil {
		return toHTTPError(err, "Failed to create weekly off exception")
	}
	return c.JSON(http.StatusCreated, e)
}

// CreateHolidayHandler declares an organization holiday
func CreateHolidayHandler(c echo.Context) error {
	var req struct {
		Date      string   `json:"date"`
		Name      string   `json:"name"`
		ExemptIDs []string `json:"exempt_practitioner_ids"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	h := &models.Holiday{Date: req.Date, Name: req.Name}
	if err := services.CreateHoliday(db.DB, h, req.ExemptIDs); err != nil {
		return toHTTPError(err, "Failed to create holiday")
	}
	return c.JSON(http.StatusCreated, h)
}

// AddHolidayExemptionHandler lets a practitioner work on a holiday
func AddHolidayExemptionHandler(c echo.Context) error {
	var req struct {
		PractitionerID string `json:"practitionerId" form:"practitionerId"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	date := c.Param("date")
	if err := services.AddHolidayExemption(db.DB, date, req.PractitionerID); err != nil {
		return toHTTPError(err, "Failed to add holiday exemption")
	}

	holiday, err := services.GetHolidayByDate(db.DB, date)
	if err != nil {
		return toHTTPError(err, "Failed to fetch holiday")
	}
	return c.JSON(http.StatusOK, holiday)
}
