package postgres

import (
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"meal-admin/internal/models"
)

type CustomerPostgresRepo struct {
	db *gorm.DB
}

func NewCustomerPostgres(db *gorm.DB) *CustomerPostgresRepo {
	return &CustomerPostgresRepo{db: db}
}

// ListCandidates returns every customer. The scheduler filters in memory;
// customer counts in this domain are small enough that a full scan is fine.
// If that stops being true, push the eligibility predicate into this query.
func (r *CustomerPostgresRepo) ListCandidates() ([]models.Customer, error) {
	var out []models.Customer
	if err := r.db.Order("created_at").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list candidates")
	}
	return out, nil
}

func (r *CustomerPostgresRepo) Get(id string) (models.Customer, error) {
	var c models.Customer
	err := r.db.Where("id = ?", id).First(&c).Error
	return c, err
}

func (r *CustomerPostgresRepo) Create(c *models.Customer) error {
	return r.db.Create(c).Error
}

func (r *CustomerPostgresRepo) Update(c *models.Customer) error {
	return r.db.Save(c).Error
}

func (r *CustomerPostgresRepo) GetLastCheck(id string) (time.Time, error) {
	c, err := r.Get(id)
	if err != nil {
		return time.Time{}, err
	}
	return c.LastCheck(), nil
}

// SetLastCheck advances the scheduler checkpoint. The WHERE clause keeps it
// monotonic: a slow concurrent run carrying an older `now` cannot move the
// checkpoint backwards.
func (r *CustomerPostgresRepo) SetLastCheck(id string, ts time.Time) error {
	return r.db.Model(&models.Customer{}).
		Where("id = ? AND (last_auto_order_check IS NULL OR last_auto_order_check <= ?)", id, ts).
		Update("last_auto_order_check", ts).Error
}
