package domain

import (
	"time"

	"github.com/jvz16/SalonBookingService/pkg/types"
)

// Appointment represents a confirmed customer booking.
// Appointments are never mutated after creation; the only destruction
// path is administrative deletion.
type Appointment struct {
	ID            int64
	CustomerName  string
	CustomerPhone string
	ServiceID     *int64 // nil when the referenced service was deleted
	Date          time.Time
	StartTime     types.TimeString

	// Denormalized from the service via join, nil when ServiceID is nil
	ServiceName            *string
	ServiceDurationMinutes *int
	ServiceColor           *string

	CreatedAt time.Time
}

// Duration returns the effective duration of the appointment in minutes
func (a *Appointment) Duration() int {
	return DurationOrDefault(a.ServiceDurationMinutes)
}

// EndTime returns the exclusive end of the occupied interval [StartTime, EndTime)
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.Duration())
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	Date     *time.Time // Конкретная дата (для движка доступности)
	DateFrom *time.Time // Начало периода (опционально)
	DateTo   *time.Time // Конец периода (опционально)
}
