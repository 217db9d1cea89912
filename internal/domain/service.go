package domain

import (
	"time"

	"github.com/jvz16/SalonBookingService/pkg/ptr"
)

// Service represents a bookable salon service
type Service struct {
	ID              int64
	Name            string // unique
	Category        *string
	DurationMinutes int
	Color           string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DisplayColor returns the calendar color for the service,
// falling back to the default when none is set
func (s *Service) DisplayColor() string {
	if s.Color == "" {
		return DefaultServiceColor
	}
	return s.Color
}

// DurationOrDefault resolves an optional service duration to a concrete value.
// Appointments whose service reference was removed keep working with the
// default duration.
func DurationOrDefault(durationMinutes *int) int {
	minutes := ptr.Deref(durationMinutes, DefaultServiceDurationMinutes)
	if minutes <= 0 {
		return DefaultServiceDurationMinutes
	}
	return minutes
}
