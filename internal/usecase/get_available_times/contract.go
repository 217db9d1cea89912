package get_available_times

import (
	"context"
	"time"

	"github.com/jvz16/SalonBookingService/internal/domain"
)

// AppointmentRepository интерфейс журнала записей
type AppointmentRepository interface {
	// ListByDate получает все записи на конкретную дату
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// BlockedSlotRepository интерфейс реестра блокировок
type BlockedSlotRepository interface {
	// ListByDate получает все блокировки на конкретную дату
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error)
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
