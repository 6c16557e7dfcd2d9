package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clinic_availability_go/db"
	"clinic_availability_go/models"
	"clinic_availability_go/services"
)

// ListPractitionersHandler returns every practitioner
func ListPractitionersHandler(c echo.Context) error {
	practitioners, err := services.GetPractitioners(db.DB)
	if err != nil {
		return toHTTPError(err, "Failed to fetch practitioners")
	}
	return c.JSON(http.StatusOK, practitioners)
}

// GetPractitionerHandler returns a single practitioner
func GetPractitionerHandler(c echo.Context) error {
	practitioner, err := services.GetPractitionerByID(db.DB, c.Param("id"))
	if err != nil {
		return toHTTPError(err, "Failed to fetch practitioner")
	}
	return c.JSON(http.StatusOK, practitioner)
}

// CreatePractitionerHandler registers a practitioner
func CreatePractitionerHandler(c echo.Context) error {
	var req struct {
		PractitionerID string `json:"practitionerId" form:"practitionerId"`
		Name           string `json:"name" form:"name"`
		StartTime      string `json:"start_time" form:"start_time"`
		EndTime        string `json:"end_time" form:"end_time"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	practitioner := &models.Practitioner{
		PractitionerID: req.PractitionerID,
		Name:           req.Name,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
	}
	if err := services.CreatePractitioner(db.DB, practitioner); err != nil {
		return toHTTPError(err, "Failed to create practitioner")
	}
	return c.JSON(http.StatusCreated, practitioner)
}

// UpdateWorkingHoursHandler changes a practitioner's working window
func UpdateWorkingHoursHandler(c echo.Context) error {
	var req struct {
		StartTime string `json:"start_time" form:"start_time"`
		EndTime   string `json:"end_time" form:"end_time"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	practitioner, err := services.UpdateWorkingHours(db.DB, c.Param("id"), req.StartTime, req.EndTime)
	if err != nil {
		return toHTTPError(err, "Failed to update working hours")
	}
	return c.JSON(http.StatusOK, practitioner)
}
