package availability

import "time"

// DayStatus is the outcome of one override category for a date.
type DayStatus int

const (
	// DayOpen means the category does not apply to the date.
	DayOpen DayStatus = iota
	// DayBlocked means the category takes the whole day off.
	DayBlocked
	// DayExempt means a base rule applies but an override cancels it.
	DayExempt
)

func (s DayStatus) String() string {
	switch s {
	case DayBlocked:
		return "blocked"
	case DayExempt:
		return "exempt"
	default:
		return "open"
	}
}

// WeeklyOffRule is a recurring day off. EndDate nil means open-ended.
type WeeklyOffRule struct {
	DayOfWeek int
	StartDate string
	EndDate   *string
}

// HolidayRule is an organization holiday with the practitioners exempt from it.
type HolidayRule struct {
	Date   string
	Exempt []string
}

// WeeklyOffMatches reports whether any rule covers the given day.
func WeeklyOffMatches(rules []WeeklyOffRule, day time.Time) bool {
	date := day.Format(DateLayout)
	weekday := int(day.Weekday())
	for _, r := range rules {
		if r.DayOfWeek != weekday || r.StartDate > date {
			continue
		}
		if r.EndDate == nil || *r.EndDate >= date {
			return true
		}
	}
	return false
}

// ResolveHoliday folds the holidays on a date into a signal for one
// practitioner. Any holiday that does not exempt the practitioner blocks.
func ResolveHoliday(holidays []HolidayRule, practitionerID, date string) HolidaySignal {
	var sig HolidaySignal
	for _, h := range holidays {
		if h.Date != date {
			continue
		}
		if containsID(h.Exempt, practitionerID) {
			if !sig.Declared {
				sig = HolidaySignal{Declared: true, Exempt: true}
			}
			continue
		}
		return HolidaySignal{Declared: true}
	}
	return sig
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func flagStatus(blocked bool) DayStatus {
	if blocked {
		return DayBlocked
	}
	return DayOpen
}

func overrideStatus(applies, overridden bool) DayStatus {
	switch {
	case !applies:
		return DayOpen
	case overridden:
		return DayExempt
	default:
		return DayBlocked
	}
}

// GateDecision holds the per-category outcome of the day-level check.
type GateDecision struct {
	Leave               DayStatus
	Holiday             DayStatus
	PractitionerHoliday DayStatus
	WeeklyOff           DayStatus
}

// EvaluateGate resolves every day-level category independently.
func EvaluateGate(c *Constraints) GateDecision {
	return GateDecision{
		Leave:               flagStatus(c.OnLeave),
		Holiday:             overrideStatus(c.Holiday.Declared, c.Holiday.Exempt),
		PractitionerHoliday: flagStatus(c.PractitionerHoliday),
		WeeklyOff:           overrideStatus(c.WeeklyOff.Matched, c.WeeklyOff.Excepted),
	}
}

// Blocked reports whether the whole day is unavailable.
func (d GateDecision) Blocked() bool {
	leave := d.Leave == DayBlocked
	holiday := d.Holiday == DayBlocked
	personal := d.PractitionerHoliday == DayBlocked
	weeklyOff := d.WeeklyOff == DayBlocked
	return leave || holiday || personal || weeklyOff
}
