package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestWeeklyOffMatches(t *testing.T) {
	monday, err := ParseDate("2025-03-10")
	require.NoError(t, err)

	t.Run("Open ended rule", func(t *testing.T) {
		rules := []WeeklyOffRule{{DayOfWeek: 1, StartDate: "2025-01-01"}}
		assert.True(t, WeeklyOffMatches(rules, monday))
	})

	t.Run("Wrong weekday", func(t *testing.T) {
		rules := []WeeklyOffRule{{DayOfWeek: 2, StartDate: "2025-01-01"}}
		assert.False(t, WeeklyOffMatches(rules, monday))
	})

	t.Run("Not started yet", func(t *testing.T) {
		rules := []WeeklyOffRule{{DayOfWeek: 1, StartDate: "2025-03-11"}}
		assert.False(t, WeeklyOffMatches(rules, monday))
	})

	t.Run("Range bounds are inclusive", func(t *testing.T) {
		rules := []WeeklyOffRule{{DayOfWeek: 1, StartDate: "2025-03-10", EndDate: strPtr("2025-03-10")}}
		assert.True(t, WeeklyOffMatches(rules, monday))
	})

	t.Run("Expired", func(t *testing.T) {
		rules := []WeeklyOffRule{{DayOfWeek: 1, StartDate: "2025-01-01", EndDate: strPtr("2025-03-09")}}
		assert.False(t, WeeklyOffMatches(rules, monday))
	})

	t.Run("Any matching rule suffices", func(t *testing.T) {
		rules := []WeeklyOffRule{
			{DayOfWeek: 1, StartDate: "2025-01-01", EndDate: strPtr("2025-02-01")},
			{DayOfWeek: 3, StartDate: "2025-01-01"},
			{DayOfWeek: 1, StartDate: "2025-03-01"},
		}
		assert.True(t, WeeklyOffMatches(rules, monday))
	})
}

func TestResolveHoliday(t *testing.T) {
	date := "2025-12-25"

	t.Run("No holiday", func(t *testing.T) {
		assert.Equal(t, HolidaySignal{}, ResolveHoliday(nil, "DOC001", date))
	})

	t.Run("Holiday on another date", func(t *testing.T) {
		holidays := []HolidayRule{{Date: "2025-12-24"}}
		assert.Equal(t, HolidaySignal{}, ResolveHoliday(holidays, "DOC001", date))
	})

	t.Run("Holiday blocks", func(t *testing.T) {
		holidays := []HolidayRule{{Date: date, Exempt: []string{"DOC002"}}}
		assert.Equal(t, HolidaySignal{Declared: true}, ResolveHoliday(holidays, "DOC001", date))
	})

	t.Run("Exemption widens", func(t *testing.T) {
		holidays := []HolidayRule{{Date: date, Exempt: []string{"DOC002", "DOC001"}}}
		assert.Equal(t, HolidaySignal{Declared: true, Exempt: true}, ResolveHoliday(holidays, "DOC001", date))
	})

	t.Run("Any non-exempting holiday blocks", func(t *testing.T) {
		holidays := []HolidayRule{
			{Date: date, Exempt: []string{"DOC001"}},
			{Date: date},
		}
		assert.Equal(t, HolidaySignal{Declared: true}, ResolveHoliday(holidays, "DOC001", date))
	})
}

func TestEvaluateGate(t *testing.T) {
	tests := []struct {
		name    string
		c       Constraints
		blocked bool
	}{
		{"Nothing applies", Constraints{}, false},
		{"On leave", Constraints{OnLeave: true}, true},
		{"Org holiday", Constraints{Holiday: HolidaySignal{Declared: true}}, true},
		{"Org holiday exempt", Constraints{Holiday: HolidaySignal{Declared: true, Exempt: true}}, false},
		{"Practitioner holiday", Constraints{PractitionerHoliday: true}, true},
		{"Weekly off", Constraints{WeeklyOff: WeeklyOffSignal{Matched: true}}, true},
		{"Weekly off with exception", Constraints{WeeklyOff: WeeklyOffSignal{Matched: true, Excepted: true}}, false},
		{"Exception without rule", Constraints{WeeklyOff: WeeklyOffSignal{Excepted: true}}, false},
		{"Leave beats every exemption", Constraints{
			OnLeave:   true,
			Holiday:   HolidaySignal{Declared: true, Exempt: true},
			WeeklyOff: WeeklyOffSignal{Matched: true, Excepted: true},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.c
			assert.Equal(t, tt.blocked, EvaluateGate(&c).Blocked())
		})
	}
}

func TestGateDecisionStatuses(t *testing.T) {
	d := EvaluateGate(&Constraints{
		Holiday:   HolidaySignal{Declared: true, Exempt: true},
		WeeklyOff: WeeklyOffSignal{Matched: true},
	})
	assert.Equal(t, DayOpen, d.Leave)
	assert.Equal(t, DayExempt, d.Holiday)
	assert.Equal(t, DayOpen, d.PractitionerHoliday)
	assert.Equal(t, DayBlocked, d.WeeklyOff)
	assert.Equal(t, "exempt", d.Holiday.String())
	assert.Equal(t, "blocked", d.WeeklyOff.String())
	assert.Equal(t, "open", d.Leave.String())
}
