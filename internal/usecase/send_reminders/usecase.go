package send_reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/jvz16/SalonBookingService/internal/domain"
	"github.com/jvz16/SalonBookingService/internal/integrations/whatsapp"
	"github.com/jvz16/SalonBookingService/pkg/ptr"
)

// UseCase use case рассылки напоминаний о завтрашних записях.
// Запускается раз в сутки из отдельной команды (cron).
type UseCase struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute отправляет напоминания по всем записям на завтра.
// Каждая запись обрабатывается независимо: сбой одной отправки
// не прерывает рассылку остальных.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, 1)

	uc.logger.Info("SendReminders: collecting appointments for %s", tomorrow.Format(domain.DateFormat))

	appointments, err := uc.appointmentRepo.ListByDate(ctx, tomorrow)
	if err != nil {
		uc.logger.Error("SendReminders: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:  tomorrow,
		Total: len(appointments),
	}

	for _, appt := range appointments {
		booking := whatsapp.BookingContext{
			CustomerName:  appt.CustomerName,
			CustomerPhone: appt.CustomerPhone,
			ServiceName:   ptr.Deref(appt.ServiceName, "Servicio"),
			Date:          appt.Date,
			StartTime:     appt.StartTime,
		}

		if err := uc.notifier.SendReminder(ctx, booking); err != nil {
			uc.logger.Error("SendReminders: failed to send reminder for appointment id=%d: %v", appt.ID, err)
			resp.Failed++
			continue
		}
		resp.Sent++
	}

	uc.logger.Info("SendReminders: date=%s, total=%d, sent=%d, failed=%d",
		tomorrow.Format(domain.DateFormat), resp.Total, resp.Sent, resp.Failed)

	return resp, nil
}
