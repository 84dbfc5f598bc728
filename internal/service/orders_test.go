package service_test

import (
	"sync"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/require"

	"meal-admin/internal/models"
	"meal-admin/internal/repository"
	"meal-admin/internal/service"
)

type orderStoreStub struct {
	mu     sync.Mutex
	orders map[string]models.Order
}

var _ repository.OrderStore = (*orderStoreStub)(nil)

func newOrderStoreStub(orders ...models.Order) *orderStoreStub {
	s := &orderStoreStub{orders: map[string]models.Order{}}
	for _, o := range orders {
		s.orders[o.ID] = o
	}
	return s
}

func (s *orderStoreStub) ExistsForDate(string, time.Time) (bool, error) { return false, nil }
func (s *orderStoreStub) NextOrderNumber() (int64, error)               { return 1, nil }
func (s *orderStoreStub) Insert(o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = *o
	return nil
}

func (s *orderStoreStub) Get(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (s *orderStoreStub) List(int, int) ([]models.Order, error)          { return nil, nil }
func (s *orderStoreStub) ListByCustomer(string) ([]models.Order, error) { return nil, nil }

func (s *orderStoreStub) UpdateStatus(id string, status models.OrderStatus, courierID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.orders[id]
	o.OrderStatus = status
	o.CourierID = courierID
	s.orders[id] = o
	return nil
}

func (s *orderStoreStub) DeleteBefore(time.Time) (int64, error) { return 0, nil }

var (
	courier = service.Actor{ID: "courier-7", Role: service.RoleCourier}
	admin   = service.Actor{ID: "admin-1", Role: service.RoleAdmin}
)

func TestTransition_CourierTakesOrder(t *testing.T) {
	store := newOrderStoreStub(models.Order{ID: "o1", OrderStatus: models.StatusPending})
	s := service.NewOrderService(store)

	got, err := s.Transition("o1", models.StatusInDelivery, courier)
	require.NoError(t, err)
	require.Equal(t, models.StatusInDelivery, got.OrderStatus)
	require.Equal(t, "courier-7", got.CourierID, "taking an order binds the courier")

	got, err = s.Transition("o1", models.StatusDelivered, courier)
	require.NoError(t, err)
	require.Equal(t, models.StatusDelivered, got.OrderStatus)
	require.Equal(t, "courier-7", got.CourierID)
}

func TestTransition_AdminCannotDeliver(t *testing.T) {
	store := newOrderStoreStub(models.Order{ID: "o1", OrderStatus: models.StatusPending})
	s := service.NewOrderService(store)

	_, err := s.Transition("o1", models.StatusInDelivery, admin)
	require.ErrorIs(t, err, service.ErrForbidden)

	stored, _ := store.Get("o1")
	require.Equal(t, models.StatusPending, stored.OrderStatus)
}

func TestTransition_GuardsOrder(t *testing.T) {
	store := newOrderStoreStub(
		models.Order{ID: "pending", OrderStatus: models.StatusPending},
		models.Order{ID: "done", OrderStatus: models.StatusDelivered},
	)
	s := service.NewOrderService(store)

	_, err := s.Transition("pending", models.StatusDelivered, courier)
	require.ErrorIs(t, err, service.ErrBadTransition, "pending cannot jump to delivered")

	_, err = s.Transition("done", models.StatusFailed, courier)
	require.ErrorIs(t, err, service.ErrBadTransition, "terminal states absorb")

	_, err = s.Transition("pending", models.OrderStatus("lost"), courier)
	require.ErrorIs(t, err, service.ErrValidation)

	_, err = s.Transition("ghost", models.StatusFailed, courier)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestTransition_AnyoneCanFail(t *testing.T) {
	store := newOrderStoreStub(models.Order{ID: "o1", OrderStatus: models.StatusPending})
	s := service.NewOrderService(store)

	got, err := s.Transition("o1", models.StatusFailed, admin)
	require.NoError(t, err)
	require.Equal(t, models.StatusFailed, got.OrderStatus)
}
