package scheduler

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"meal-admin/internal/models"
	"meal-admin/internal/repository"
)

// TimePolicy picks the delivery time for an order on the given (already
// day-truncated) date.
type TimePolicy func(date time.Time) time.Time

// WindowedDeliveryTime returns the default policy: a random time between
// start and end offsets from midnight, inclusive, at minute granularity.
func WindowedDeliveryTime(start, end time.Duration, rnd *rand.Rand) TimePolicy {
	if end < start {
		start, end = end, start
	}
	minutes := int(end-start)/int(time.Minute) + 1
	var mu sync.Mutex
	return func(date time.Time) time.Time {
		mu.Lock()
		offset := rnd.Intn(minutes)
		mu.Unlock()
		return date.Add(start + time.Duration(offset)*time.Minute)
	}
}

// DateFailure records one candidate date that could not be persisted.
type DateFailure struct {
	Date  time.Time `json:"date"`
	Error string    `json:"error"`
}

type Materializer struct {
	orders       repository.OrderStore
	deliveryTime TimePolicy
	log          *logrus.Entry
}

type MaterializerOption func(*Materializer)

func WithTimePolicy(p TimePolicy) MaterializerOption {
	return func(m *Materializer) { m.deliveryTime = p }
}

func NewMaterializer(orders repository.OrderStore, opts ...MaterializerOption) *Materializer {
	m := &Materializer{
		orders: orders,
		deliveryTime: WindowedDeliveryTime(11*time.Hour, 14*time.Hour,
			rand.New(rand.NewSource(time.Now().UnixNano()))),
		log: logrus.WithField("component", "materializer"),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Materialize walks every calendar date in [start, end] ascending and
// persists one order per due, uncovered date. Persistence is order-by-order:
// a failure on one date is recorded and the walk continues, so a mid-range
// crash leaves partial but valid progress. The store-level duplicate error
// is the second line of defense behind ExistsForDate; losing that race to a
// concurrent run is a skip, not a failure.
func (m *Materializer) Materialize(c models.Customer, start, end time.Time) ([]models.Order, []DateFailure) {
	var (
		created  []models.Order
		failures []DateFailure
	)

	last := day(end)
	for d := day(start); !d.After(last); d = d.AddDate(0, 0, 1) {
		if !DueOn(c.DeliveryDays, d) {
			continue
		}

		exists, err := m.orders.ExistsForDate(c.ID, d)
		if err != nil {
			failures = append(failures, DateFailure{Date: d, Error: err.Error()})
			continue
		}
		if exists {
			continue
		}

		// Reserved per draft, not once for the range: another writer may
		// interleave between dates.
		num, err := m.orders.NextOrderNumber()
		if err != nil {
			failures = append(failures, DateFailure{Date: d, Error: err.Error()})
			continue
		}

		o := models.Order{
			ID:              uuid.NewString(),
			OrderNumber:     num,
			CustomerID:      c.ID,
			DeliveryAddress: c.Address,
			DeliveryTime:    m.deliveryTime(d),
			Quantity:        1,
			Calories:        c.CalorieTarget,
			SpecialFeatures: c.SpecialFeatures,
			PaymentStatus:   models.PaymentUnpaid,
			PaymentMethod:   models.MethodCash,
			IsPrepaid:       false,
			OrderStatus:     models.StatusPending,
			CreatedAt:       d,
			IsAutoOrder:     true,
		}

		switch err := m.orders.Insert(&o); {
		case errors.Is(err, repository.ErrDuplicateForDate):
			m.log.WithFields(logrus.Fields{
				"customer": c.ID,
				"date":     d.Format("2006-01-02"),
			}).Debug("date covered by concurrent run, skipping")
		case err != nil:
			failures = append(failures, DateFailure{Date: d, Error: err.Error()})
		default:
			created = append(created, o)
		}
	}
	return created, failures
}
