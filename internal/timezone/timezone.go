package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Europe/Lisbon"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// Clock answers "what day is it" in the business timezone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(tz string) *Clock {
	return &Clock{loc: Location(tz), now: time.Now}
}

// FixedClock always reports t. Used by tests and tooling.
func FixedClock(t time.Time, tz string) *Clock {
	return &Clock{loc: Location(tz), now: func() time.Time { return t }}
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today is the current calendar date in the clock's timezone, expressed as
// midnight UTC so it compares directly with stored DATE columns.
func (c *Clock) Today() time.Time {
	return DateOf(c.Now())
}

// DateOf drops the time of day and the zone of t, keeping its calendar date.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthRange returns the first day of the month containing d and the first
// day of the following month.
func MonthRange(d time.Time) (time.Time, time.Time) {
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
