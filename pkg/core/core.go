package core

import "time"

// Truncators usable with Bars.Boundaries to build vertical grids
var (
	// Daily groups bars by calendar day
	Daily = func(t time.Time) time.Time {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	}

	// Monthly groups bars by calendar month
	Monthly = func(t time.Time) time.Time {
		y, m, _ := t.Date()
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	}

	// Yearly groups bars by calendar year
	Yearly = func(t time.Time) time.Time {
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	}
)
