package availability

import "context"

// HolidaySignal describes an organization holiday on the requested date.
type HolidaySignal struct {
	// Declared is true when a holiday exists on the date.
	Declared bool
	// Exempt is true when the practitioner is on the holiday's exemption list.
	Exempt bool
}

// WeeklyOffSignal describes recurring days off on the requested date.
type WeeklyOffSignal struct {
	// Matched is true when at least one weekly-off rule covers the date.
	Matched bool
	// Excepted is true when a weekly-off exception exists for the date.
	Excepted bool
}

// Constraints is one consistent snapshot of everything that restricts a
// practitioner on one date.
type Constraints struct {
	PractitionerID string
	Date           string

	WorkingHours    TimeRange
	Appointments    []TimeRange
	DailyBreaks     []TimeRange
	ExceptionBreaks []TimeRange

	OnLeave             bool
	Holiday             HolidaySignal
	PractitionerHoliday bool
	WeeklyOff           WeeklyOffSignal
}

// ConstraintFetcher loads constraints for one practitioner and date. It must
// return ErrPractitionerNotFound (possibly wrapped) for unknown practitioners.
type ConstraintFetcher interface {
	FetchConstraints(ctx context.Context, practitionerID, date string) (*Constraints, error)
}
