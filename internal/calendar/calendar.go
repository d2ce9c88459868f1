// Package calendar maps instants to calendar days in a fixed location.
package calendar

import "time"

const keyLayout = "2006-01-02"

// Day identifies one calendar day: its first instant and a stable key.
type Day struct {
	Start time.Time
	Key   string
}

// End is the first instant of the following day.
func (d Day) End() time.Time {
	return d.Start.AddDate(0, 0, 1)
}

// Calendar resolves days in a single location.
type Calendar struct {
	loc *time.Location
}

func New(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{loc: loc}
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

// DayOf returns the day containing t. Start and Key are derived from the
// same normalised value so the two can never disagree.
func (c *Calendar) DayOf(t time.Time) Day {
	local := t.In(c.loc)
	y, m, d := local.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, c.loc)
	return Day{Start: start, Key: start.Format(keyLayout)}
}

// Parse reads a YYYY-MM-DD string as a day in the calendar's location.
func (c *Calendar) Parse(key string) (Day, error) {
	t, err := time.ParseInLocation(keyLayout, key, c.loc)
	if err != nil {
		return Day{}, err
	}
	return c.DayOf(t), nil
}
