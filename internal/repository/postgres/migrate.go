package postgres

import (
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"meal-admin/internal/models"
)

// Migrate creates the schema pieces gorm's AutoMigrate cannot express:
// the order-number sequence (atomic reservation under concurrent schedulers)
// and the partial unique index that backs the per-(customer, day) duplicate
// check for auto orders. Manual orders stay exempt so an operator can add a
// second order on an already-covered day.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Customer{}, &models.Order{}).Error; err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	if err := db.Exec(`CREATE SEQUENCE IF NOT EXISTS order_numbers START 1`).Error; err != nil {
		return errors.Wrap(err, "create order_numbers sequence")
	}
	// The AT TIME ZONE 'UTC' step keeps the expression immutable; a bare
	// timestamptz::date cast reads the session TimeZone and postgres refuses
	// it in an index expression. ExistsForDate uses the same expression so
	// the pre-check and the index agree on day boundaries.
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_auto_orders_customer_day
		 ON orders (customer_id, ((created_at AT TIME ZONE 'UTC')::date)) WHERE is_auto_order`,
	).Error; err != nil {
		return errors.Wrap(err, "create auto-order uniqueness index")
	}
	return nil
}
