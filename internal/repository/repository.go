package repository

import (
	"time"

	"meal-admin/internal/models"
	"meal-admin/internal/repository/postgres"

	"github.com/jinzhu/gorm"
)

// ErrDuplicateForDate is returned by OrderStore.Insert when an auto order
// already covers the same customer and calendar day. The scheduler treats it
// as "already materialized", which is what makes concurrent runs safe.
var ErrDuplicateForDate = postgres.ErrDuplicateForDate

type CustomerStore interface {
	ListCandidates() ([]models.Customer, error)
	Get(id string) (models.Customer, error)
	Create(c *models.Customer) error
	Update(c *models.Customer) error
	GetLastCheck(id string) (time.Time, error)
	SetLastCheck(id string, ts time.Time) error
}

type OrderStore interface {
	ExistsForDate(customerID string, date time.Time) (bool, error)
	NextOrderNumber() (int64, error)
	Insert(o *models.Order) error
	Get(id string) (models.Order, error)
	List(limit, offset int) ([]models.Order, error)
	ListByCustomer(customerID string) ([]models.Order, error)
	UpdateStatus(id string, status models.OrderStatus, courierID string) error
	DeleteBefore(cutoff time.Time) (int64, error)
}

type Repository struct {
	CustomerStore
	OrderStore
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		CustomerStore: postgres.NewCustomerPostgres(db),
		OrderStore:    postgres.NewOrderPostgres(db),
	}
}
