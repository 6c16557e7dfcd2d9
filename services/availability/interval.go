package availability

import (
	"fmt"
	"sort"
)

// Interval is a half-open [Start, End) range of minutes within one day.
type Interval struct {
	Start int
	End   int
}

// Duration returns the length of the interval in minutes.
func (i Interval) Duration() int {
	return i.End - i.Start
}

// ParseInterval converts a pair of "HH:MM" strings into an Interval.
// The end must be strictly after the start.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ToMinutes(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ToMinutes(end)
	if err != nil {
		return Interval{}, err
	}
	if e <= s {
		return Interval{}, fmt.Errorf("%w: %s-%s ends before it starts", ErrTimeRange, start, end)
	}
	return Interval{Start: s, End: e}, nil
}

// Slot formats the interval for the outbound result.
func (i Interval) Slot() (Slot, error) {
	start, err := ToTimeString(i.Start)
	if err != nil {
		return Slot{}, err
	}
	end, err := ToTimeString(i.End)
	if err != nil {
		return Slot{}, err
	}
	return Slot{StartTime: start, EndTime: end}, nil
}

// Category tags where a busy interval came from. It is carried for logging
// only; the sweep never branches on it.
type Category string

const (
	CategoryAppointment    Category = "appointment"
	CategoryDailyBreak     Category = "daily_break"
	CategoryExceptionBreak Category = "exception_break"
)

// BusyInterval is a window during which the practitioner cannot be booked.
type BusyInterval struct {
	Interval
	Category Category
}

// TimeRange is a raw "HH:MM" pair as supplied by a ConstraintFetcher.
type TimeRange struct {
	StartTime string
	EndTime   string
}

// BusyFrom tags and parses a batch of raw ranges of one category.
func BusyFrom(category Category, ranges []TimeRange) ([]BusyInterval, error) {
	busy := make([]BusyInterval, 0, len(ranges))
	for _, r := range ranges {
		iv, err := ParseInterval(r.StartTime, r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", category, err)
		}
		busy = append(busy, BusyInterval{Interval: iv, Category: category})
	}
	return busy, nil
}

// ReduceBusy concatenates every category into one sequence sorted by start.
// Overlaps are left in place for the slot sweep to absorb.
func ReduceBusy(groups ...[]BusyInterval) []BusyInterval {
	total := 0
	for _, g := range groups {
		total += len(g)
	}

	busy := make([]BusyInterval, 0, total)
	for _, g := range groups {
		busy = append(busy, g...)
	}

	sort.SliceStable(busy, func(i, j int) bool {
		return busy[i].Start < busy[j].Start
	})
	return busy
}
