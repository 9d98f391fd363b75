package services

import (
	"time"
)

// Clock supplies "now" in the contest's operational time zone. Every day-key
// and cutoff comparison in the service layer goes through one Clock instance,
// so tests can pin the calendar to any instant.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type realClock struct {
	loc *time.Location
}

func NewClock(loc *time.Location) Clock {
	return &realClock{loc: loc}
}

func (c *realClock) Now() time.Time { return time.Now().In(c.loc) }
func (c *realClock) Location() *time.Location { return c.loc }

// DayStart maps an instant to the start of its calendar day in the clock's
// zone. This is the day key for prompts, submission dedup and resolution.
func DayStart(clock Clock, t time.Time) time.Time {
	local := t.In(clock.Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, clock.Location())
}

// Today is DayStart of the clock's current instant.
func Today(clock Clock) time.Time {
	return DayStart(clock, clock.Now())
}
