package scheduler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"meal-admin/internal/models"
	"meal-admin/internal/repository"
)

// DefaultWindow is the materialization look-ahead from the run timestamp.
const DefaultWindow = 30 * 24 * time.Hour

// EventPublisher receives every order the driver persists. Optional;
// publish failures are logged and never affect the run.
type EventPublisher interface {
	OrderCreated(ctx context.Context, o models.Order) error
}

// CustomerResult is the per-customer line of a RunReport.
type CustomerResult struct {
	CustomerID    string        `json:"customer_id"`
	Name          string        `json:"name"`
	OrdersCreated int           `json:"orders_created"`
	Failures      []DateFailure `json:"failures,omitempty"`
	Error         string        `json:"error,omitempty"`
}

// RunReport summarizes one scheduler pass. The operator trigger returns it
// verbatim as the response body.
type RunReport struct {
	RanAt         time.Time        `json:"ran_at"`
	Scanned       int              `json:"customers_scanned"`
	Eligible      int              `json:"customers_eligible"`
	OrdersCreated int              `json:"orders_created"`
	Customers     []CustomerResult `json:"customers,omitempty"`
	Drained       bool             `json:"drained,omitempty"`
}

// Driver orchestrates a full run: scan, gate, materialize, checkpoint.
// Runs are sequential per instance but safe to execute concurrently with
// another Driver (manual trigger during a timed run, or a second replica):
// order numbers come from an atomic store reservation and the duplicate
// check is re-verified at insert time.
type Driver struct {
	customers repository.CustomerStore
	mat       *Materializer
	gate      Gate
	window    time.Duration
	events    EventPublisher
	log       *logrus.Entry
}

type DriverOption func(*Driver)

func WithGate(g Gate) DriverOption {
	return func(d *Driver) { d.gate = g }
}

func WithWindow(w time.Duration) DriverOption {
	return func(d *Driver) {
		if w > 0 {
			d.window = w
		}
	}
}

func WithEvents(p EventPublisher) DriverOption {
	return func(d *Driver) { d.events = p }
}

func NewDriver(customers repository.CustomerStore, mat *Materializer, opts ...DriverOption) *Driver {
	d := &Driver{
		customers: customers,
		mat:       mat,
		window:    DefaultWindow,
		log:       logrus.WithField("component", "scheduler"),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// RunOnce executes a single pass at the given timestamp.
//
// Error taxonomy: a failed customer scan aborts the whole run with an error
// and zero mutations. A failed per-customer refresh skips that customer and
// leaves its checkpoint alone, so the next run retries it. Per-date
// persistence failures are recorded in the report and do not block the
// checkpoint. Context cancellation drains gracefully: the customer in
// flight finishes, no new one is picked up.
func (d *Driver) RunOnce(ctx context.Context, now time.Time) (RunReport, error) {
	list, err := d.customers.ListCandidates()
	if err != nil {
		runFailuresTotal.Inc()
		return RunReport{RanAt: now}, errors.Wrap(err, "list candidates")
	}

	rep := RunReport{RanAt: now, Scanned: len(list)}
	windowEnd := now.Add(d.window)

	for _, c := range list {
		select {
		case <-ctx.Done():
			rep.Drained = true
			d.log.Warn("run drained before completing customer scan")
			runsTotal.Inc()
			return rep, nil
		default:
		}

		if !d.gate.Eligible(c, now) {
			continue
		}
		rep.Eligible++

		res := CustomerResult{CustomerID: c.ID, Name: c.Name}

		// Refresh settings right before materializing: the scan may be
		// minutes old and an admin may have paused the customer meanwhile.
		fresh, err := d.customers.Get(c.ID)
		if err != nil {
			res.Error = err.Error()
			rep.Customers = append(rep.Customers, res)
			d.log.WithError(err).WithField("customer", c.ID).Error("customer refresh failed, skipping")
			continue
		}
		if !d.gate.Eligible(fresh, now) {
			rep.Eligible--
			continue
		}

		created, failures := d.mat.Materialize(fresh, now, windowEnd)
		res.OrdersCreated = len(created)
		res.Failures = failures
		rep.OrdersCreated += len(created)
		ordersCreatedTotal.Add(float64(len(created)))
		dateFailuresTotal.Add(float64(len(failures)))

		d.publish(ctx, created)

		// Transient per-date failures do not block the checkpoint; the
		// duplicate check makes retrying those dates on a later run safe.
		if err := d.customers.SetLastCheck(c.ID, now); err != nil {
			res.Error = err.Error()
			d.log.WithError(err).WithField("customer", c.ID).Error("checkpoint update failed")
		}

		rep.Customers = append(rep.Customers, res)
		d.log.WithFields(logrus.Fields{
			"customer":       c.ID,
			"orders_created": len(created),
			"date_failures":  len(failures),
		}).Info("customer materialized")
	}

	runsTotal.Inc()
	d.log.WithFields(logrus.Fields{
		"scanned":        rep.Scanned,
		"eligible":       rep.Eligible,
		"orders_created": rep.OrdersCreated,
	}).Info("scheduler run finished")
	return rep, nil
}

func (d *Driver) publish(ctx context.Context, orders []models.Order) {
	if d.events == nil {
		return
	}
	for _, o := range orders {
		if err := d.events.OrderCreated(ctx, o); err != nil {
			d.log.WithError(err).WithField("order", o.ID).Warn("order event publish failed")
		}
	}
}
