package booking

import (
	"time"
)

type ProposalInput struct {
	StartDate  Date
	EndDate    Date
	StartTime  ClockTime
	ReturnSlot ReturnSlot
	// CustomEnd is the end timestamp of a same-day booking. It is ignored
	// when EndDate is after StartDate.
	CustomEnd *time.Time
	Location  *time.Location
}

type Proposal struct {
	Interval   TimeInterval
	StartClock string
	EndClock   string
	SameDay    bool
}

// ProposeInterval turns the picker state into a concrete interval and checks
// it against the car's reserved intervals. Nothing is returned on failure.
func ProposeInterval(in ProposalInput, booked BookedRangeSet) (Proposal, error) {
	loc := orUTC(in.Location)

	slot := in.ReturnSlot
	if slot == "" {
		slot = ReturnSlotNone
	}
	if !slot.IsValid() {
		return Proposal{}, ErrUnknownReturnSlot
	}

	days := in.EndDate.DaysSince(in.StartDate)
	if days < 0 {
		return Proposal{}, ErrEndBeforeStart
	}

	start := in.StartDate.At(in.StartTime, loc)

	var end time.Time
	sameDay := days == 0
	if sameDay {
		if in.CustomEnd == nil {
			return Proposal{}, ErrMinimumDuration
		}
		end = in.CustomEnd.In(loc)
		if !end.After(start) {
			return Proposal{}, ErrCustomEndNotAfterStart
		}
	} else {
		end = start.AddDate(0, 0, days).Add(slot.Offset())
	}

	interval, err := NewTimeInterval(start, end)
	if err != nil {
		return Proposal{}, err
	}

	if conflict, ok := booked.FirstOverlap(interval); ok {
		return Proposal{}, &OverlapError{Proposed: interval, Conflict: conflict.In(loc)}
	}

	return Proposal{
		Interval:   interval,
		StartClock: FormatClock(start),
		EndClock:   FormatClock(end),
		SameDay:    sameDay,
	}, nil
}
