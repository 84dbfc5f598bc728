package service

import (
	"time"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"meal-admin/internal/models"
	"meal-admin/internal/repository"
)

type OrderService struct {
	repo repository.OrderStore
}

func NewOrderService(repo repository.OrderStore) *OrderService {
	return &OrderService{repo: repo}
}

func (s *OrderService) List(limit, offset int) ([]models.Order, error) {
	return s.repo.List(limit, offset)
}

func (s *OrderService) Get(id string) (models.Order, error) {
	o, err := s.repo.Get(id)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, ErrNotFound
	}
	return o, err
}

func (s *OrderService) ListByCustomer(customerID string) ([]models.Order, error) {
	return s.repo.ListByCustomer(customerID)
}

// Transition moves an order through its lifecycle. Courier-only states
// (in_delivery, delivered) require a courier actor; taking an order into
// delivery binds that courier to it.
func (s *OrderService) Transition(id string, next models.OrderStatus, actor Actor) (models.Order, error) {
	if !next.Valid() {
		return models.Order{}, ErrValidation
	}

	o, err := s.repo.Get(id)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}

	if !o.OrderStatus.CanTransition(next) {
		return models.Order{}, ErrBadTransition
	}
	if (next == models.StatusInDelivery || next == models.StatusDelivered) && actor.Role != RoleCourier {
		return models.Order{}, ErrForbidden
	}

	courierID := o.CourierID
	if next == models.StatusInDelivery {
		courierID = actor.ID
	}

	if err := s.repo.UpdateStatus(id, next, courierID); err != nil {
		return models.Order{}, err
	}

	o.OrderStatus = next
	o.CourierID = courierID
	logrus.WithFields(logrus.Fields{
		"order":  id,
		"status": next,
		"actor":  actor.ID,
	}).Info("order status changed")
	return o, nil
}

func (s *OrderService) PurgeBefore(cutoff time.Time) (int64, error) {
	return s.repo.DeleteBefore(cutoff)
}
