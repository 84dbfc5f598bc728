package service_test

import (
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/require"

	"meal-admin/internal/models"
	"meal-admin/internal/repository"
	"meal-admin/internal/service"
)

type customerStoreStub struct {
	customers map[string]models.Customer
}

var _ repository.CustomerStore = (*customerStoreStub)(nil)

func newCustomerStoreStub() *customerStoreStub {
	return &customerStoreStub{customers: map[string]models.Customer{}}
}

func (s *customerStoreStub) ListCandidates() ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range s.customers {
		out = append(out, c)
	}
	return out, nil
}

func (s *customerStoreStub) Get(id string) (models.Customer, error) {
	c, ok := s.customers[id]
	if !ok {
		return models.Customer{}, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (s *customerStoreStub) Create(c *models.Customer) error {
	s.customers[c.ID] = *c
	return nil
}

func (s *customerStoreStub) Update(c *models.Customer) error {
	s.customers[c.ID] = *c
	return nil
}

func (s *customerStoreStub) GetLastCheck(id string) (time.Time, error) { return time.Time{}, nil }
func (s *customerStoreStub) SetLastCheck(string, time.Time) error      { return nil }

func validCustomer() models.Customer {
	return models.Customer{
		Name:          "Dana",
		Address:       "Satpayev 90",
		CalorieTarget: 2500,
		DeliveryDays:  models.DeliveryDays{Monday: true},
	}
}

func TestCustomerCreate_AssignsIDAndCreatedAt(t *testing.T) {
	store := newCustomerStoreStub()
	s := service.NewCustomerService(store)

	c := validCustomer()
	require.NoError(t, s.Create(&c))
	require.NotEmpty(t, c.ID)
	require.False(t, c.CreatedAt.IsZero())

	stored, err := s.Get(c.ID)
	require.NoError(t, err)
	require.Equal(t, "Dana", stored.Name)
}

func TestCustomerCreate_RejectsBadCalorieTarget(t *testing.T) {
	s := service.NewCustomerService(newCustomerStoreStub())

	c := validCustomer()
	c.CalorieTarget = 1800
	require.ErrorIs(t, s.Create(&c), service.ErrValidation)

	c = validCustomer()
	c.Name = ""
	require.ErrorIs(t, s.Create(&c), service.ErrValidation)
}

func TestCustomerUpdate_PreservesImmutableFields(t *testing.T) {
	store := newCustomerStoreStub()
	s := service.NewCustomerService(store)

	c := validCustomer()
	require.NoError(t, s.Create(&c))
	created := c.CreatedAt

	checked := created.Add(35 * 24 * time.Hour)
	stored := store.customers[c.ID]
	stored.LastAutoOrderCheck = &checked
	store.customers[c.ID] = stored

	upd := c
	upd.Name = "Dana K."
	upd.CreatedAt = time.Now().Add(time.Hour)   // must be ignored
	upd.LastAutoOrderCheck = nil                 // must be ignored
	require.NoError(t, s.Update(&upd))

	after, err := s.Get(c.ID)
	require.NoError(t, err)
	require.Equal(t, "Dana K.", after.Name)
	require.Equal(t, created, after.CreatedAt)
	require.NotNil(t, after.LastAutoOrderCheck)
	require.Equal(t, checked, *after.LastAutoOrderCheck)
}

func TestCustomerGet_NotFound(t *testing.T) {
	s := service.NewCustomerService(newCustomerStoreStub())
	_, err := s.Get("missing")
	require.ErrorIs(t, err, service.ErrNotFound)
}
