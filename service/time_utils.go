package service

import (
	"time"
)

const calendarDayFormat = "2006-01-02"

// CalendarDay renders the UTC calendar day a time falls on. All daily
// gates in the system (daily claim, revive reset) compare these values,
// so the reset boundary is midnight UTC regardless of host timezone.
func CalendarDay(t time.Time) string {
	return t.UTC().Format(calendarDayFormat)
}

// SameCalendarDay reports whether two times fall on the same UTC
// calendar day.
func SameCalendarDay(a, b time.Time) bool {
	return CalendarDay(a) == CalendarDay(b)
}

// revivesUsedToday applies the daily reset rule to a stored revive
// counter: a counter stamped with a different calendar day than now
// counts as zero. Shared by the revive write path and the read-only
// profile view so both always agree.
func revivesUsedToday(reviveCount int, reviveCountDate string, now time.Time) int {
	if reviveCountDate != CalendarDay(now) {
		return 0
	}
	return reviveCount
}
