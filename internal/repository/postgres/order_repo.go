package postgres

import (
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"meal-admin/internal/models"
)

// ErrDuplicateForDate surfaces a violation of the per-(customer, day)
// uniqueness index on auto orders. Re-exported by the repository package.
var ErrDuplicateForDate = stderrors.New("order already exists for customer and date")

type OrderPostgresRepo struct {
	db *gorm.DB
}

func NewOrderPostgres(db *gorm.DB) *OrderPostgresRepo {
	return &OrderPostgresRepo{db: db}
}

// ExistsForDate reports whether any order for the customer falls on the same
// UTC calendar day as date. It always queries the store: the scheduler may
// run concurrently with another replica, so an in-process answer would go
// stale. The day expression matches the uq_auto_orders_customer_day index.
func (r *OrderPostgresRepo) ExistsForDate(customerID string, date time.Time) (bool, error) {
	var count int
	err := r.db.Model(&models.Order{}).
		Where("customer_id = ? AND (created_at AT TIME ZONE 'UTC')::date = (? AT TIME ZONE 'UTC')::date",
			customerID, date).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "exists for date")
	}
	return count > 0, nil
}

// NextOrderNumber reserves the next order number atomically through a
// postgres sequence. Numbers are strictly increasing across concurrent
// writers; gaps are possible and fine.
func (r *OrderPostgresRepo) NextOrderNumber() (int64, error) {
	var n int64
	row := r.db.Raw(`SELECT nextval('order_numbers')`).Row()
	if err := row.Scan(&n); err != nil {
		return 0, errors.Wrap(err, "next order number")
	}
	return n, nil
}

func (r *OrderPostgresRepo) Insert(o *models.Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if err := r.db.Create(o).Error; err != nil {
		if isUniqueViolation(err) && o.IsAutoOrder {
			return ErrDuplicateForDate
		}
		return errors.Wrap(err, "insert order")
	}
	return nil
}

func (r *OrderPostgresRepo) Get(id string) (models.Order, error) {
	var o models.Order
	err := r.db.Where("id = ?", id).First(&o).Error
	return o, err
}

func (r *OrderPostgresRepo) List(limit, offset int) ([]models.Order, error) {
	var out []models.Order
	q := r.db.Order("order_number desc")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return out, nil
}

func (r *OrderPostgresRepo) ListByCustomer(customerID string) ([]models.Order, error) {
	var out []models.Order
	err := r.db.Where("customer_id = ?", customerID).Order("created_at").Find(&out).Error
	if err != nil {
		return nil, errors.Wrap(err, "list orders by customer")
	}
	return out, nil
}

func (r *OrderPostgresRepo) UpdateStatus(id string, status models.OrderStatus, courierID string) error {
	return r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"order_status": status,
			"courier_id":   courierID,
		}).Error
}

// DeleteBefore is the operator bulk-delete: drops every order dated strictly
// before cutoff and returns the number removed.
func (r *OrderPostgresRepo) DeleteBefore(cutoff time.Time) (int64, error) {
	q := r.db.Where("created_at < ?", cutoff).Delete(&models.Order{})
	if q.Error != nil {
		return 0, errors.Wrap(q.Error, "delete orders before")
	}
	return q.RowsAffected, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
