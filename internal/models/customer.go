package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DeliveryDays is a customer's weekly recurrence pattern. Stored as a jsonb
// column so the admin UI payload maps onto it directly.
type DeliveryDays struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

func (d DeliveryDays) On(w time.Weekday) bool {
	switch w {
	case time.Monday:
		return d.Monday
	case time.Tuesday:
		return d.Tuesday
	case time.Wednesday:
		return d.Wednesday
	case time.Thursday:
		return d.Thursday
	case time.Friday:
		return d.Friday
	case time.Saturday:
		return d.Saturday
	default:
		return d.Sunday
	}
}

// Any reports whether at least one weekday is enabled.
func (d DeliveryDays) Any() bool {
	return d.Monday || d.Tuesday || d.Wednesday || d.Thursday || d.Friday || d.Saturday || d.Sunday
}

func (d DeliveryDays) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *DeliveryDays) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = DeliveryDays{}
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("delivery_days: unsupported scan type %T", src)
	}
}

type Customer struct {
	ID                 string       `json:"id"                  gorm:"primary_key;type:uuid"`
	Name               string       `json:"name"                validate:"required"`
	Phone              string       `json:"phone"`
	Address            string       `json:"address"             validate:"required"`
	CalorieTarget      int          `json:"calorie_target"      validate:"oneof=1200 1600 2000 2500 3000"`
	SpecialFeatures    string       `json:"special_features"`
	DeliveryDays       DeliveryDays `json:"delivery_days"       gorm:"type:jsonb"`
	AutoOrdersEnabled  bool         `json:"auto_orders_enabled"`
	IsActive           bool         `json:"is_active"           gorm:"index"`
	CreatedAt          time.Time    `json:"created_at"`
	LastAutoOrderCheck *time.Time   `json:"last_auto_order_check,omitempty"`
}

// LastCheck is the scheduler checkpoint, falling back to CreatedAt when the
// customer has never been checked.
func (c Customer) LastCheck() time.Time {
	if c.LastAutoOrderCheck != nil {
		return *c.LastAutoOrderCheck
	}
	return c.CreatedAt
}
