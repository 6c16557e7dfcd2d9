package availability

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Availability labels.
const (
	StatusAvailable    = "Available"
	StatusNotAvailable = "Not available"
	StatusFullyBooked  = "Fully booked"
)

// Slot is one bookable window in the outbound result.
type Slot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Result is the answer for one practitioner and date.
type Result struct {
	PractitionerID string `json:"practitionerId"`
	Date           string `json:"date"`
	Availability   string `json:"availability"`
	AvailableSlots []Slot `json:"availableSlots"`
}

// Resolver computes bookable slots. It keeps no per-call state and is safe
// for concurrent use.
type Resolver struct {
	fetcher ConstraintFetcher
	policy  Policy
	logger  zerolog.Logger
}

// NewResolver builds a Resolver. The policy is validated up front.
func NewResolver(fetcher ConstraintFetcher, policy Policy, logger zerolog.Logger) (*Resolver, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{
		fetcher: fetcher,
		policy:  policy,
		logger:  logger.With().Str("component", "availability").Logger(),
	}, nil
}

// Policy returns the slot policy in use.
func (r *Resolver) Policy() Policy {
	return r.policy
}

// Resolve returns the free slots of a practitioner on a date.
func (r *Resolver) Resolve(ctx context.Context, practitionerID, date string) (*Result, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, err
	}

	c, err := r.fetcher.FetchConstraints(ctx, practitionerID, date)
	if err != nil {
		return nil, fmt.Errorf("fetch constraints for %s on %s: %w", practitionerID, date, err)
	}

	log := r.logger.With().Str("practitioner_id", practitionerID).Str("date", date).Logger()

	gate := EvaluateGate(c)
	if gate.Blocked() {
		log.Info().
			Stringer("leave", gate.Leave).
			Stringer("holiday", gate.Holiday).
			Stringer("practitioner_holiday", gate.PractitionerHoliday).
			Stringer("weekly_off", gate.WeeklyOff).
			Msg("day blocked")
		return &Result{
			PractitionerID: practitionerID,
			Date:           date,
			Availability:   StatusNotAvailable,
			AvailableSlots: []Slot{},
		}, nil
	}

	work, err := ParseInterval(c.WorkingHours.StartTime, c.WorkingHours.EndTime)
	if err != nil {
		return nil, fmt.Errorf("working hours of %s: %w", practitionerID, err)
	}

	busy, err := r.busyIntervals(c)
	if err != nil {
		return nil, fmt.Errorf("busy intervals of %s on %s: %w", practitionerID, date, err)
	}
	if e := log.Debug(); e.Enabled() {
		arr := zerolog.Arr()
		for _, b := range busy {
			arr.Dict(zerolog.Dict().Str("type", string(b.Category)).Int("start", b.Start).Int("end", b.End))
		}
		e.Array("unavailable", arr).Msg("busy intervals")
	}

	blocks := FreeBlocks(work, busy, r.policy)
	intervals := SplitSlots(blocks, r.policy)

	slots := make([]Slot, 0, len(intervals))
	for _, iv := range intervals {
		s, err := iv.Slot()
		if err != nil {
			return nil, fmt.Errorf("format slot: %w", err)
		}
		slots = append(slots, s)
	}

	status := StatusFullyBooked
	if len(slots) > 0 {
		status = StatusAvailable
	}
	log.Info().Str("availability", status).Int("slots", len(slots)).Msg("availability resolved")

	return &Result{
		PractitionerID: practitionerID,
		Date:           date,
		Availability:   status,
		AvailableSlots: slots,
	}, nil
}

func (r *Resolver) busyIntervals(c *Constraints) ([]BusyInterval, error) {
	appointments, err := BusyFrom(CategoryAppointment, c.Appointments)
	if err != nil {
		return nil, err
	}
	dailyBreaks, err := BusyFrom(CategoryDailyBreak, c.DailyBreaks)
	if err != nil {
		return nil, err
	}
	exceptionBreaks, err := BusyFrom(CategoryExceptionBreak, c.ExceptionBreaks)
	if err != nil {
		return nil, err
	}
	return ReduceBusy(appointments, dailyBreaks, exceptionBreaks), nil
}
