package booking

import (
	"fmt"
	"time"
)

// TimeInterval is an immutable reservation window.
type TimeInterval struct {
	start time.Time
	end   time.Time
}

func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if end.Before(start) {
		return TimeInterval{}, fmt.Errorf("%w: %s > %s", ErrInvalidInterval, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeInterval{start: start, end: end}, nil
}

func (i TimeInterval) Start() time.Time {
	return i.start
}

func (i TimeInterval) End() time.Time {
	return i.end
}

func (i TimeInterval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

// Overlaps uses the half-open rule: touching endpoints do not overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.start.Before(other.end) && i.end.After(other.start)
}

// ContainsDate reports whether d lies within the calendar days the interval
// touches in loc, both ends inclusive.
func (i TimeInterval) ContainsDate(d Date, loc *time.Location) bool {
	first := DateOf(i.start, loc)
	last := DateOf(i.end, loc)
	return !d.Before(first) && !d.After(last)
}

func (i TimeInterval) In(loc *time.Location) TimeInterval {
	loc = orUTC(loc)
	return TimeInterval{start: i.start.In(loc), end: i.end.In(loc)}
}

func (i TimeInterval) String() string {
	return fmt.Sprintf("[%s,%s)", i.start.Format(time.RFC3339), i.end.Format(time.RFC3339))
}
