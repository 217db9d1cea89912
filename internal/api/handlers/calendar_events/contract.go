package calendar_events

import (
	"context"

	"github.com/jvz16/SalonBookingService/internal/service/calendar/models"
)

type CalendarService interface {
	GetEvents(ctx context.Context, req *models.GetEventsRequest) (*models.EventListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
