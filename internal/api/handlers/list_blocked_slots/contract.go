package list_blocked_slots

import (
	"context"

	"github.com/jvz16/SalonBookingService/internal/service/blackouts/models"
)

type BlackoutService interface {
	List(ctx context.Context, req *models.ListBlockedSlotsRequest) (*models.BlockedSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
