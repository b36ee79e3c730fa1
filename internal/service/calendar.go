package service

import (
	"time"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
	"github.com/blaisecz/dailyform-tracker/internal/trend"
)

// Calendar decides which civil day "today" is and how days are labelled.
type Calendar struct {
	Location *time.Location
	Locale   string
	// Now defaults to time.Now; tests pin it.
	Now func() time.Time
}

// NewCalendar creates a Calendar bound to the wall clock.
func NewCalendar(loc *time.Location, locale string) Calendar {
	return Calendar{Location: loc, Locale: locale, Now: time.Now}
}

// Today returns the current civil day in the reference timezone.
func (c Calendar) Today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return trend.Today(now(), c.location())
}

// Window returns the seven days ending today.
func (c Calendar) Window() []domain.DayDescriptor {
	return trend.BuildWindow(c.Today(), c.Locale)
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}
