package clearance

import (
	"time"
)

// DefaultWorkingDays is the processing lead time applied when callers do not
// supply one.
const DefaultWorkingDays = 2

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// dateOf drops the time of day, keeping the calendar date in t's location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextWorkingDay returns the first Monday-Friday date on or after t.
func NextWorkingDay(t time.Time) time.Time {
	d := dateOf(t)
	for isWeekend(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// EarliestClearance returns the date a visitor submitted at the given
// instant is cleared. The submission day, rolled forward to a weekday,
// counts as the first of workingDays; clearance is the next weekday after
// the last counted one. Values below one are treated as one.
func EarliestClearance(submitted time.Time, workingDays int) time.Time {
	if workingDays < 1 {
		workingDays = 1
	}

	d := NextWorkingDay(submitted)
	counted := 1
	for counted < workingDays {
		d = d.AddDate(0, 0, 1)
		if !isWeekend(d) {
			counted++
		}
	}
	return NextWorkingDay(d.AddDate(0, 0, 1))
}
