package calendar

import (
	"context"
	"fmt"

	"github.com/jvz16/SalonBookingService/internal/domain"
	"github.com/jvz16/SalonBookingService/internal/service/calendar/models"
	"github.com/jvz16/SalonBookingService/pkg/ptr"
)

// Service сервис ленты событий календаря для админ-панели
type Service struct {
	appointmentRepo AppointmentRepository
	blockedSlotRepo BlockedSlotRepository
	hours           domain.BusinessHours
	logger          Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	appointmentRepo AppointmentRepository,
	blockedSlotRepo BlockedSlotRepository,
	hours domain.BusinessHours,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		blockedSlotRepo: blockedSlotRepo,
		hours:           hours,
		logger:          logger,
	}
}

// GetEvents собирает события календаря за период: записи цветом услуги
// и блокировки фоновыми серыми событиями
func (s *Service) GetEvents(ctx context.Context, req *models.GetEventsRequest) (*models.EventListResponse, error) {
	appointments, err := s.appointmentRepo.ListWithFilter(ctx, domain.AppointmentsFilter{
		DateFrom: req.From,
		DateTo:   req.To,
	})
	if err != nil {
		s.logger.Error("GetEvents: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: GetEvents - repository error: %v", ErrInternal, err)
	}

	blocks, err := s.blockedSlotRepo.ListWithRange(ctx, req.From, req.To)
	if err != nil {
		s.logger.Error("GetEvents: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: GetEvents - repository error: %v", ErrInternal, err)
	}

	events := make([]models.Event, 0, len(appointments)+len(blocks))

	for _, appt := range appointments {
		events = append(events, s.appointmentEvent(appt))
	}
	for _, b := range blocks {
		events = append(events, s.blockEvent(b))
	}

	s.logger.Info("GetEvents: %d appointment events, %d block events", len(appointments), len(blocks))
	return &models.EventListResponse{Events: events}, nil
}

// appointmentEvent превращает запись в событие календаря
func (s *Service) appointmentEvent(appt *domain.Appointment) models.Event {
	title := fmt.Sprintf("%s - %s", appt.CustomerName, ptr.Deref(appt.ServiceName, "Servicio"))

	color := ptr.Deref(appt.ServiceColor, domain.DefaultServiceColor)
	if color == "" {
		color = domain.DefaultServiceColor
	}

	date := appt.Date.Format(domain.DateFormat)
	end := appt.StartTime
	if e, err := appt.EndTime(); err == nil {
		end = e
	}

	return models.Event{
		ID:    fmt.Sprintf("appointment-%d", appt.ID),
		Title: title,
		Start: fmt.Sprintf("%sT%s", date, appt.StartTime),
		End:   fmt.Sprintf("%sT%s", date, end),
		Color: color,
	}
}

// blockEvent превращает блокировку в фоновое событие.
// Весь день растягивается на 00:00-23:59, точка занимает один шаг сетки.
func (s *Service) blockEvent(b *domain.BlockedSlot) models.Event {
	date := b.Date.Format(domain.DateFormat)

	title := b.Reason
	if title == "" {
		title = "Cerrado"
	}

	event := models.Event{
		ID:      fmt.Sprintf("block-%d", b.ID),
		Title:   title,
		Color:   domain.BlockedEventColor,
		Display: "background",
	}

	// Формы проверяются в защитном порядке: день -> точка -> диапазон
	switch {
	case b.IsFullDay():
		event.Start = fmt.Sprintf("%sT00:00", date)
		event.End = fmt.Sprintf("%sT23:59", date)
	case b.IsPoint():
		event.Start = fmt.Sprintf("%sT%s", date, b.Time)
		end, err := b.Time.AddMinutes(s.hours.SlotStepMinutes)
		if err != nil {
			end = b.Time
		}
		event.End = fmt.Sprintf("%sT%s", date, end)
	default:
		event.Start = fmt.Sprintf("%sT%s", date, b.StartTime)
		event.End = fmt.Sprintf("%sT%s", date, b.EndTime)
	}

	return event
}
