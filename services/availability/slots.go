package availability

import "fmt"

// Default slot policy.
const (
	DefaultMinSlotMinutes       = 20
	DefaultPreferredSlotMinutes = 60
)

// Policy controls how free time is cut into bookable slots.
type Policy struct {
	// MinSlot is the floor applied to both gaps and remainders.
	MinSlot int
	// Preferred is the length of a regular slot.
	Preferred int
}

// DefaultPolicy returns the 20/60 minute policy.
func DefaultPolicy() Policy {
	return Policy{MinSlot: DefaultMinSlotMinutes, Preferred: DefaultPreferredSlotMinutes}
}

// Validate checks the policy is usable.
func (p Policy) Validate() error {
	if p.MinSlot <= 0 || p.Preferred <= 0 {
		return fmt.Errorf("slot policy durations must be positive (min=%d, preferred=%d)", p.MinSlot, p.Preferred)
	}
	if p.MinSlot > p.Preferred {
		return fmt.Errorf("minimum slot (%d) exceeds preferred slot (%d)", p.MinSlot, p.Preferred)
	}
	return nil
}

// FreeBlocks walks the working window against busy intervals sorted by start
// and returns every gap of at least MinSlot minutes.
func FreeBlocks(work Interval, busy []BusyInterval, policy Policy) []Interval {
	var blocks []Interval
	cursor := work.Start

	for _, b := range busy {
		if cursor >= b.End {
			continue
		}

		gapEnd := b.Start
		if gapEnd > work.End {
			gapEnd = work.End
		}
		if gapEnd > cursor && gapEnd-cursor >= policy.MinSlot {
			blocks = append(blocks, Interval{Start: cursor, End: gapEnd})
		}

		if b.End > cursor {
			cursor = b.End
		}
	}

	if work.End-cursor >= policy.MinSlot {
		blocks = append(blocks, Interval{Start: cursor, End: work.End})
	}

	return blocks
}

// SplitSlots cuts each free block into Preferred-length slots. Blocks shorter
// than Preferred are kept whole; a trailing remainder is kept only when it
// reaches MinSlot.
func SplitSlots(blocks []Interval, policy Policy) []Interval {
	var slots []Interval

	for _, block := range blocks {
		if block.Duration() < policy.MinSlot {
			continue
		}
		if block.Duration() < policy.Preferred {
			slots = append(slots, block)
			continue
		}

		start := block.Start
		for ; start+policy.Preferred <= block.End; start += policy.Preferred {
			slots = append(slots, Interval{Start: start, End: start + policy.Preferred})
		}
		if block.End-start >= policy.MinSlot {
			slots = append(slots, Interval{Start: start, End: block.End})
		}
	}

	return slots
}
