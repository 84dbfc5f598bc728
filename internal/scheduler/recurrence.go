package scheduler

import (
	"time"

	"meal-admin/internal/models"
)

// DueOn reports whether the customer's weekly pattern calls for a delivery
// on d. Pure weekday lookup; every calendar date maps to exactly one bucket,
// so there are no error cases.
func DueOn(days models.DeliveryDays, d time.Time) bool {
	return days.On(d.Weekday())
}

// day truncates t to midnight UTC. All scheduler date arithmetic happens on
// day-truncated UTC times so that "same calendar day" means the same thing
// in the store and in the window iteration.
func day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
