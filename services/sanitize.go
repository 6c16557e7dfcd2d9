package services

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"clinic_availability_go/services/availability"
)

var plainTextPolicy = bluemonday.StrictPolicy()

// SanitizeText strips any markup from free text fields (names, reasons)
func SanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(plainTextPolicy.Sanitize(s)))
}

// normalizeRange validates an "HH:MM" pair and returns it zero-padded so
// that stored times compare correctly as strings
func normalizeRange(start, end string) (string, string, error) {
	iv, err := availability.ParseInterval(strings.TrimSpace(start), strings.TrimSpace(end))
	if err != nil {
		return "", "", validationError("%v", err)
	}
	s, err := availability.ToTimeString(iv.Start)
	if err != nil {
		return "", "", validationError("%v", err)
	}
	e, err := availability.ToTimeString(iv.End)
	if err != nil {
		return "", "", validationError("%v", err)
	}
	return s, e, nil
}

func normalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if _, err := availability.ParseDate(date); err != nil {
		return "", validationError("%v", err)
	}
	return date, nil
}
