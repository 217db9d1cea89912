package domain

// Default configuration values
const (
	DefaultOpenHour        = 8
	DefaultCloseHour       = 20
	DefaultSlotStepMinutes = 60

	// DefaultServiceDurationMinutes is assumed when an appointment has no
	// service reference (the service was deleted after booking)
	DefaultServiceDurationMinutes = 60

	DefaultServiceColor = "#0d6efd"
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxNameLength             = 100
	MaxPhoneLength            = 20
	MaxReasonLength           = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Calendar display colors
const (
	BlockedEventColor = "#adb5bd"
)
