package scheduler_test

import (
	"sync"
	"time"

	"github.com/jinzhu/gorm"

	"meal-admin/internal/models"
	"meal-admin/internal/repository"
)

type customerStub struct {
	mu          sync.Mutex
	customers   []models.Customer
	listErr     error
	getErr      map[string]error
	setCheckErr error
	lastChecks  map[string]time.Time
}

var _ repository.CustomerStore = (*customerStub)(nil)

func (s *customerStub) ListCandidates() ([]models.Customer, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out, nil
}

func (s *customerStub) Get(id string) (models.Customer, error) {
	if err := s.getErr[id]; err != nil {
		return models.Customer{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.ID == id {
			if ts, ok := s.lastChecks[id]; ok {
				t := ts
				c.LastAutoOrderCheck = &t
			}
			return c, nil
		}
	}
	return models.Customer{}, gorm.ErrRecordNotFound
}

func (s *customerStub) Create(c *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, *c)
	return nil
}

func (s *customerStub) Update(c *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			s.customers[i] = *c
		}
	}
	return nil
}

func (s *customerStub) GetLastCheck(id string) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastChecks[id], nil
}

func (s *customerStub) SetLastCheck(id string, ts time.Time) error {
	if s.setCheckErr != nil {
		return s.setCheckErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastChecks == nil {
		s.lastChecks = map[string]time.Time{}
	}
	if cur, ok := s.lastChecks[id]; !ok || !ts.Before(cur) {
		s.lastChecks[id] = ts
	}
	return nil
}

type orderStub struct {
	mu        sync.Mutex
	orders    []models.Order
	seq       int64
	existsErr func(date time.Time) error
	insertErr func(o models.Order) error
}

var _ repository.OrderStore = (*orderStub)(nil)

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func (s *orderStub) ExistsForDate(customerID string, date time.Time) (bool, error) {
	if s.existsErr != nil {
		if err := s.existsErr(date); err != nil {
			return false, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.CustomerID == customerID && sameDay(o.CreatedAt, date) {
			return true, nil
		}
	}
	return false, nil
}

func (s *orderStub) NextOrderNumber() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq, nil
}

func (s *orderStub) Insert(o *models.Order) error {
	if s.insertErr != nil {
		if err := s.insertErr(*o); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.IsAutoOrder {
		for _, ex := range s.orders {
			if ex.IsAutoOrder && ex.CustomerID == o.CustomerID && sameDay(ex.CreatedAt, o.CreatedAt) {
				return repository.ErrDuplicateForDate
			}
		}
	}
	s.orders = append(s.orders, *o)
	return nil
}

func (s *orderStub) Get(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, nil
}

func (s *orderStub) List(limit, offset int) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *orderStub) ListByCustomer(customerID string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *orderStub) UpdateStatus(id string, status models.OrderStatus, courierID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].OrderStatus = status
			s.orders[i].CourierID = courierID
		}
	}
	return nil
}

func (s *orderStub) DeleteBefore(cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var kept []models.Order
	var n int64
	for _, o := range s.orders {
		if o.CreatedAt.Before(cutoff) {
			n++
			continue
		}
		kept = append(kept, o)
	}
	s.orders = kept
	return n, nil
}

func (s *orderStub) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func (s *orderStub) all() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// noon pins delivery times so assertions don't depend on the random policy.
func noon(d time.Time) time.Time { return d.Add(12 * time.Hour) }
