// Package recurrence computes when a chore is next due from its frequency and
// most recent completion
package recurrence

import (
	"time"

	"github.com/thenoetrevino/chores/internal/models"
)

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock returns a Clock that always reports t
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

const day = 24 * time.Hour

// Schedule is the derived due state of a chore
type Schedule struct {
	LastCompleted int64     `json:"last_completed"` // epoch seconds, 0 when never completed
	NextDue       time.Time `json:"next_due"`
	DaysLeft      float64   `json:"days_left"` // negative when overdue
}

// Overdue reports whether the next-due instant has passed
func (s Schedule) Overdue() bool {
	return s.DaysLeft < 0
}

// NextDue returns lastCompleted advanced by frequency units, using calendar
// arithmetic in loc. Month and year steps clamp to the last day of the target
// month. An unrecognized unit yields lastCompleted itself.
func NextDue(lastCompleted int64, frequency int, unit models.FrequencyUnit, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	from := time.Unix(lastCompleted, 0).In(loc)

	switch unit {
	case models.FrequencyDay:
		return from.AddDate(0, 0, frequency)
	case models.FrequencyWeek:
		return from.AddDate(0, 0, 7*frequency)
	case models.FrequencyMonth:
		return addMonths(from, frequency)
	case models.FrequencyYear:
		return addMonths(from, 12*frequency)
	default:
		// Unknown units are due at last completion
		return from
	}
}

// DaysLeft returns the signed, fractional number of days from now until nextDue
func DaysLeft(nextDue, now time.Time) float64 {
	// time.Duration saturates near 292 years, so work from seconds
	secs := float64(nextDue.Unix()-now.Unix()) + float64(nextDue.Nanosecond()-now.Nanosecond())/1e9
	return secs / day.Seconds()
}

// addMonths adds n calendar months, clamping the day to the target month's length
func addMonths(t time.Time, n int) time.Time {
	year, month, dayOfMonth := t.Date()
	hour, minute, sec := t.Clock()

	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first.Year(), first.Month(), t.Location()); dayOfMonth > last {
		dayOfMonth = last
	}

	return time.Date(first.Year(), first.Month(), dayOfMonth, hour, minute, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// Calculator computes schedules against an injectable clock and location
type Calculator struct {
	clock Clock
	loc   *time.Location
}

// Option configures a Calculator
type Option func(*Calculator)

// WithClock sets the clock used for "now"
func WithClock(c Clock) Option {
	return func(calc *Calculator) {
		if c != nil {
			calc.clock = c
		}
	}
}

// WithLocation sets the location calendar arithmetic is done in
func WithLocation(loc *time.Location) Option {
	return func(calc *Calculator) {
		if loc != nil {
			calc.loc = loc
		}
	}
}

// NewCalculator creates a Calculator using the system clock and UTC by default
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		clock: SystemClock,
		loc:   time.UTC,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now returns the calculator's current time
func (c *Calculator) Now() time.Time {
	return c.clock.Now()
}

// Location returns the location used for calendar arithmetic
func (c *Calculator) Location() *time.Location {
	return c.loc
}

// Schedule derives the due state for a chore completed at lastCompleted
func (c *Calculator) Schedule(lastCompleted int64, frequency int, unit models.FrequencyUnit) Schedule {
	next := NextDue(lastCompleted, frequency, unit, c.loc)
	return Schedule{
		LastCompleted: lastCompleted,
		NextDue:       next,
		DaysLeft:      DaysLeft(next, c.clock.Now()),
	}
}

// ScheduleFor is a convenience wrapper around Schedule for a listed chore
func (c *Calculator) ScheduleFor(row *models.ChoreRow) Schedule {
	return c.Schedule(row.LastCompleted, row.Frequency, row.FrequencyType)
}
