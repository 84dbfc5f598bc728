package service

import (
	"context"
	"time"

	"meal-admin/internal/scheduler"
)

type AutoOrderService struct {
	driver *scheduler.Driver
	now    func() time.Time
}

func NewAutoOrderService(driver *scheduler.Driver) *AutoOrderService {
	return &AutoOrderService{driver: driver, now: time.Now}
}

// RunNow executes one scheduler pass at the current wall clock. Used both by
// the periodic timer and by the operator trigger endpoint; the two may
// overlap, which the driver tolerates.
func (s *AutoOrderService) RunNow(ctx context.Context) (scheduler.RunReport, error) {
	return s.driver.RunOnce(ctx, s.now().UTC())
}
