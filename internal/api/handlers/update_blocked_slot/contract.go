package update_blocked_slot

import (
	"context"

	"github.com/jvz16/SalonBookingService/internal/service/blackouts/models"
)

type BlackoutService interface {
	Update(ctx context.Context, id int64, req *models.CreateBlockedSlotRequest) (*models.BlockedSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
