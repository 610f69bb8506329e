// Package period computes the Monday–Friday reporting window that
// contains a given instant. The window is the unit every weekly report
// is stamped with, so it must be stable: any two instants in the same
// calendar week map to the same window.
package period

import "time"

// Week is one Monday–Friday reporting window in local server time.
type Week struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Of returns the window containing ref: the Monday of ref's week at
// 00:00:00 through the Friday at 23:59:59, in ref's location. A Sunday
// reference belongs to the window that finished the day before, so it
// maps to the previous Monday (offset -6 rather than +1).
func Of(ref time.Time) Week {
	offset := int(time.Monday) - int(ref.Weekday())
	if ref.Weekday() == time.Sunday {
		offset = -6
	}
	monday := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()).
		AddDate(0, 0, offset)
	friday := monday.AddDate(0, 0, 4)
	return Week{
		Start: monday,
		End:   time.Date(friday.Year(), friday.Month(), friday.Day(), 23, 59, 59, 0, ref.Location()),
	}
}

// Current returns the window for the server's current local time.
func Current() Week { return Of(time.Now()) }

// Contains reports whether t falls inside the window [Start, End].
func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
