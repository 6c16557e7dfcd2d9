package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clinic_availability_go/db"
	"clinic_availability_go/models"
	"clinic_availability_go/services"
)

// GetAppointmentsHandler lists a practitioner's appointments, optionally
// restricted to ?date=YYYY-MM-DD
func GetAppointmentsHandler(c echo.Context) error {
	practitionerID := c.Param("id")
	if _, err := services.GetPractitionerByID(db.DB, practitionerID); err != nil {
		return toHTTPError(err, "Failed to fetch practitioner")
	}

	appointments, err := services.GetPractitionerAppointments(db.DB, practitionerID, c.QueryParam("date"))
	if err != nil {
		return toHTTPError(err, "Failed to fetch appointments")
	}
	return c.JSON(http.StatusOK, appointments)
}

// CreateAppointmentHandler books an appointment
func CreateAppointmentHandler(c echo.Context) error {
	var req struct {
		Date        string `json:"date" form:"date"`
		StartTime   string `json:"start_time" form:"start_time"`
		EndTime     string `json:"end_time" form:"end_time"`
		PatientName string `json:"patient_name" form:"patient_name"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date, start_time, and end_time are required")
	}

	apt := &models.Appointment{
		PractitionerID: c.Param("id"),
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		PatientName:    req.PatientName,
	}
	if err := services.CreateAppointment(db.DB, apt); err != nil {
		return toHTTPError(err, "Failed to create appointment")
	}
	return c.JSON(http.StatusCreated, apt)
}

// CancelAppointmentHandler cancels an appointment
func CancelAppointmentHandler(c echo.Context) error {
	id := c.Param("appointmentId")
	if err := services.CancelAppointment(db.DB, id); err != nil {
		return toHTTPError(err, "Failed to cancel appointment")
	}

	apt, err := services.GetAppointmentByID(db.DB, id)
	if err != nil {
		return toHTTPError(err, "Failed to fetch appointment")
	}
	return c.JSON(http.StatusOK, apt)
}
