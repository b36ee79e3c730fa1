// Package trend builds the seven-day windows behind the chart and summary
// endpoints. Everything here is pure: no I/O, no logging, no clock reads.
package trend

import (
	"time"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
)

var weekdayLabels = map[string][7]string{
	// Indexed by time.Weekday, Sunday first.
	"fr-FR": {"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	"en-US": {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

const defaultLocale = "fr-FR"

// Today returns the calendar day of now in loc, as midnight UTC.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// DateOf returns the calendar day written in a date-column value, as
// midnight UTC. Form and summary rows store created_at as `date`, so the
// year, month and day are read as-is in t's own location and no zone
// conversion is applied. Instants must go through Today instead.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildWindow returns the seven days ending on today, oldest first.
// Unknown locales use French labels.
func BuildWindow(today time.Time, locale string) []domain.DayDescriptor {
	labels, ok := weekdayLabels[locale]
	if !ok {
		labels = weekdayLabels[defaultLocale]
	}

	end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	window := make([]domain.DayDescriptor, domain.WindowDays)
	for i := range window {
		day := end.AddDate(0, 0, i-(domain.WindowDays-1))
		window[i] = domain.DayDescriptor{
			Date:  day,
			Label: labels[day.Weekday()],
		}
	}
	return window
}

// Labels extracts the label of every window day.
func Labels(window []domain.DayDescriptor) []string {
	labels := make([]string, len(window))
	for i, day := range window {
		labels[i] = day.Label
	}
	return labels
}
