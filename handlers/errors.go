package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"clinic_availability_go/services"
	"clinic_availability_go/services/availability"
)

// toHTTPError maps service errors to HTTP responses. Anything unrecognised
// is reported as a 500 with the given fallback message.
func toHTTPError(err error, fallback string) error {
	switch {
	case errors.Is(err, availability.ErrInvalidDate), errors.Is(err, services.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, availability.ErrPractitionerNotFound), errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrAlreadyExists), errors.Is(err, services.ErrAppointmentConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, fallback).SetInternal(err)
	}
}
