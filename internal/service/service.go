package service

import (
	"context"
	"time"

	"meal-admin/internal/models"
	"meal-admin/internal/repository"
	"meal-admin/internal/scheduler"
)

// Actor identifies the authenticated caller of a mutating operation,
// extracted from the request token by the HTTP layer.
type Actor struct {
	ID   string
	Role string
}

const (
	RoleAdmin   = "admin"
	RoleCourier = "courier"
)

type Customers interface {
	List() ([]models.Customer, error)
	Get(id string) (models.Customer, error)
	Create(c *models.Customer) error
	Update(c *models.Customer) error
}

type Orders interface {
	List(limit, offset int) ([]models.Order, error)
	Get(id string) (models.Order, error)
	ListByCustomer(customerID string) ([]models.Order, error)
	Transition(id string, next models.OrderStatus, actor Actor) (models.Order, error)
	PurgeBefore(cutoff time.Time) (int64, error)
}

type AutoOrders interface {
	RunNow(ctx context.Context) (scheduler.RunReport, error)
}

type Service struct {
	Customers
	Orders
	AutoOrders
}

func NewService(repo *repository.Repository, driver *scheduler.Driver) *Service {
	return &Service{
		Customers:  NewCustomerService(repo.CustomerStore),
		Orders:     NewOrderService(repo.OrderStore),
		AutoOrders: NewAutoOrderService(driver),
	}
}
