package scheduler

import (
	"time"

	"meal-admin/internal/models"
)

// DefaultThreshold is how long a customer must have existed, or gone
// unchecked, before a run picks them up.
const DefaultThreshold = 30 * 24 * time.Hour

// Gate decides whether a customer is considered at all in a given run.
// This is an at-least-once filter: it may admit a customer whose window is
// already fully covered, and the materializer's duplicate check is what
// actually prevents double orders.
type Gate struct {
	Threshold time.Duration
}

func (g Gate) threshold() time.Duration {
	if g.Threshold <= 0 {
		return DefaultThreshold
	}
	return g.Threshold
}

// Eligible applies the switches and the elapsed-time clauses. Elapsed time
// is wall-clock duration, floored to whole days, not calendar-day
// subtraction: a customer created 29 days and 23 hours ago is not eligible
// yet. LastCheck falls back to CreatedAt for never-checked customers.
func (g Gate) Eligible(c models.Customer, now time.Time) bool {
	if !c.IsActive || !c.AutoOrdersEnabled {
		return false
	}
	th := g.threshold()
	return now.Sub(c.CreatedAt) >= th || now.Sub(c.LastCheck()) >= th
}
