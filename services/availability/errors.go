package availability

import "errors"

// Errors returned by the availability engine. Callers match them with errors.Is;
// the engine wraps them with the offending value.
var (
	ErrInvalidDate          = errors.New("invalid date: expected YYYY-MM-DD")
	ErrPractitionerNotFound = errors.New("practitioner not found")
	ErrTimeFormat           = errors.New("invalid time: expected HH:MM")
	ErrTimeRange            = errors.New("time out of range")
)
