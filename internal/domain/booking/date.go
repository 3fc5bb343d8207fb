package booking

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Date is a calendar day without a time zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w %q", ErrInvalidDate, s)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// DateOf returns the calendar day t falls on in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	t = t.In(orUTC(loc))
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) AddDays(n int) Date {
	return NewDate(d.year, d.month, d.day+n)
}

func (d Date) AddMonths(n int) Date {
	return NewDate(d.year, d.month+time.Month(n), d.day)
}

// DaysSince returns d - other in whole calendar days.
func (d Date) DaysSince(other Date) int {
	return int(d.utc().Sub(other.utc()).Hours() / 24)
}

func (d Date) Before(other Date) bool { return d.utc().Before(other.utc()) }
func (d Date) After(other Date) bool  { return d.utc().After(other.utc()) }

// At combines the day with a wall-clock time in loc.
func (d Date) At(c ClockTime, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, c.hour, c.minute, 0, 0, orUTC(loc))
}

func (d Date) String() string {
	return d.utc().Format(DateLayout)
}

func (d Date) utc() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	hour   int
	minute int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w %02d:%02d", ErrInvalidClockTime, hour, minute)
	}
	return ClockTime{hour: hour, minute: minute}, nil
}

func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w %q", ErrInvalidClockTime, s)
	}
	return ClockTime{hour: t.Hour(), minute: t.Minute()}, nil
}

func (c ClockTime) Hour() int   { return c.hour }
func (c ClockTime) Minute() int { return c.minute }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

// FormatClock renders t as HH:mm in its own location.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// DateWindow is the inclusive range of days a booking may start on.
type DateWindow struct {
	min Date
	max Date
}

func NewDateWindow(today Date, months int) DateWindow {
	if months < 0 {
		months = 0
	}
	return DateWindow{min: today, max: today.AddMonths(months)}
}

func (w DateWindow) Min() Date { return w.min }
func (w DateWindow) Max() Date { return w.max }

func (w DateWindow) Contains(d Date) bool {
	return !d.Before(w.min) && !d.After(w.max)
}

// Clamp narrows [from, to] to the window. ok is false when nothing remains.
func (w DateWindow) Clamp(from, to Date) (Date, Date, bool) {
	if from.Before(w.min) {
		from = w.min
	}
	if to.After(w.max) {
		to = w.max
	}
	return from, to, !from.After(to)
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
