package blackouts

import (
	"context"
	"time"

	"github.com/jvz16/SalonBookingService/internal/domain"
)

// BlockedSlotRepository интерфейс реестра блокировок
type BlockedSlotRepository interface {
	Create(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.BlockedSlot, error)
	ListWithRange(ctx context.Context, from, to *time.Time) ([]*domain.BlockedSlot, error)
	Update(ctx context.Context, id int64, block *domain.BlockedSlot) (*domain.BlockedSlot, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
