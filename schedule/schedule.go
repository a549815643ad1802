// Package schedule produces the demo text shown on the departure board: a
// clock line and a handful of bus lines counting down to their next arrival.
package schedule

import (
	"fmt"
	"time"
)

const (
	minLineWidth = 8
	minTimeWidth = 3
	clockLayout  = "15:04:05"
)

// Route is a bus line arriving every Period minutes, on the hour.
type Route struct {
	Line   string
	Period int
}

// DemoRoutes are the routes shown by DemoLines.
var DemoRoutes = []Route{
	{Line: "1234", Period: 10},
	{Line: "4 B", Period: 15},
	{Line: "Express", Period: 2},
	{Line: "Express solar", Period: 20000},
}

// MinutesUntil returns the minutes left until the next arrival of a line
// running every period minutes. The result is in [1, period].
func MinutesUntil(period int, now time.Time) int {
	if period <= 0 {
		return 0
	}
	return period - now.Minute()%period
}

// FormatBusLine formats one departure line. The line name is padded to eight
// columns and the minutes to three; longer values are kept whole so they
// stand out.
func FormatBusLine(line string, period int, now time.Time) string {
	m := MinutesUntil(period, now)
	unit := "minutes"
	if m == 1 {
		unit = "minute"
	}
	return fmt.Sprintf(" Bus line %-*s arrives in %*d %s", minLineWidth, line, minTimeWidth, m, unit)
}

// FormatClock returns now as a 24-hour HH:MM:SS string.
func FormatClock(now time.Time) string {
	return now.Format(clockLayout)
}

// DemoLines returns the full board for now: a blank line, the clock, a blank
// line, one line per route and a trailing blank line.
func DemoLines(now time.Time) []string {
	lines := []string{"", " " + FormatClock(now), ""}
	for _, r := range DemoRoutes {
		lines = append(lines, FormatBusLine(r.Line, r.Period, now))
	}
	return append(lines, "")
}

// Source produces board text from a clock.
type Source struct {
	Now func() time.Time
}

// Lines returns the board for the current time.
func (s Source) Lines() []string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return DemoLines(now())
}
