package booking

import (
	"slices"
	"time"
)

// BookedRangeSet is a read-only snapshot of one car's reserved intervals,
// ordered by start.
type BookedRangeSet struct {
	intervals []TimeInterval
}

func NewBookedRangeSet(intervals []TimeInterval) BookedRangeSet {
	sorted := slices.Clone(intervals)
	slices.SortStableFunc(sorted, func(a, b TimeInterval) int {
		return a.start.Compare(b.start)
	})
	return BookedRangeSet{intervals: sorted}
}

func (s BookedRangeSet) Len() int {
	return len(s.intervals)
}

func (s BookedRangeSet) IsEmpty() bool {
	return len(s.intervals) == 0
}

func (s BookedRangeSet) Intervals() []TimeInterval {
	return slices.Clone(s.intervals)
}

// FirstOverlap returns the earliest reserved interval that overlaps candidate.
func (s BookedRangeSet) FirstOverlap(candidate TimeInterval) (TimeInterval, bool) {
	for _, b := range s.intervals {
		if candidate.Overlaps(b) {
			return b, true
		}
	}
	return TimeInterval{}, false
}

// IsDateDisabled is the calendar pre-filter. It works on whole days and so
// disables more than the timestamp overlap test rejects.
func (s BookedRangeSet) IsDateDisabled(d Date, loc *time.Location) bool {
	for _, b := range s.intervals {
		if b.ContainsDate(d, loc) {
			return true
		}
	}
	return false
}

// DisabledDates lists the disabled days in [from, to].
func (s BookedRangeSet) DisabledDates(from, to Date, loc *time.Location) []Date {
	var out []Date
	if s.IsEmpty() {
		return out
	}
	for d := from; !d.After(to); d = d.AddDays(1) {
		if s.IsDateDisabled(d, loc) {
			out = append(out, d)
		}
	}
	return out
}
