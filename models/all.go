package models

// All lists every model managed by migrations
func All() []interface{} {
	return []interface{}{
		&Practitioner{},
		&Appointment{},
		&DailyBreak{},
		&ExceptionBreak{},
		&Holiday{},
		&HolidayExemption{},
		&PractitionerHoliday{},
		&WeeklyOff{},
		&WeeklyOffException{},
		&LeaveType{},
		&Leave{},
	}
}
