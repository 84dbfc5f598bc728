package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"meal-admin/internal/models"
	"meal-admin/internal/repository"
)

type CustomerService struct {
	repo repository.CustomerStore
	v    *validator.Validate
}

func NewCustomerService(repo repository.CustomerStore) *CustomerService {
	return &CustomerService{repo: repo, v: validator.New()}
}

func (s *CustomerService) List() ([]models.Customer, error) {
	return s.repo.ListCandidates()
}

func (s *CustomerService) Get(id string) (models.Customer, error) {
	c, err := s.repo.Get(id)
	if gorm.IsRecordNotFoundError(err) {
		return models.Customer{}, ErrNotFound
	}
	return c, err
}

func (s *CustomerService) Create(c *models.Customer) error {
	if err := s.v.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return s.repo.Create(c)
}

func (s *CustomerService) Update(c *models.Customer) error {
	if err := s.v.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	cur, err := s.repo.Get(c.ID)
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	// CreatedAt is immutable and the checkpoint belongs to the scheduler.
	c.CreatedAt = cur.CreatedAt
	c.LastAutoOrderCheck = cur.LastAutoOrderCheck
	return s.repo.Update(c)
}
