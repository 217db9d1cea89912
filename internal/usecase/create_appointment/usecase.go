package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jvz16/SalonBookingService/internal/domain"
	appointmentRepo "github.com/jvz16/SalonBookingService/internal/infra/storage/appointment"
	serviceRepo "github.com/jvz16/SalonBookingService/internal/infra/storage/service"
	"github.com/jvz16/SalonBookingService/internal/integrations/whatsapp"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockedSlotRepo BlockedSlotRepository
	serviceRepo     ServiceRepository
	notifier        Notifier
	txManager       TransactionManager
	hours           domain.BusinessHours
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockedSlotRepo BlockedSlotRepository,
	serviceRepo ServiceRepository,
	notifier Notifier,
	txManager TransactionManager,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockedSlotRepo: blockedSlotRepo,
		serviceRepo:     serviceRepo,
		notifier:        notifier,
		txManager:       txManager,
		hours:           hours,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка доступности и вставка выполняются в сериализуемой транзакции
// с блокировкой записей дня (FOR UPDATE), что исключает гонку двух
// конкурентных запросов на одно время. Уникальный индекс (date, start_time)
// служит последним рубежом на случай деградации уровня изоляции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%q, date=%s, time=%s",
		req.CustomerName, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу, если указана
	var svc *domain.Service
	if req.ServiceID != nil {
		found, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateAppointment: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !found.Active {
			uc.logger.Warn("CreateAppointment: service id=%d is inactive", *req.ServiceID)
			return nil, ErrServiceNotFound
		}
		svc = found
	}

	serviceDuration := domain.DefaultServiceDurationMinutes
	if svc != nil {
		serviceDuration = svc.DurationMinutes
	}

	var result *domain.Appointment

	// 3. Проверка доступности и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокировки на дату
		blocks, err := uc.blockedSlotRepo.ListByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get blocked slots: %v", err)
			return fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
		}

		// 3.2. Записи на дату с блокировкой строк (FOR UPDATE)
		appointments, err := uc.appointmentRepo.ListByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 3.3. Авторитетная проверка запрошенного времени
		slot, err := validateSlot(req.StartTime, uc.hours, blocks, appointments, serviceDuration)
		if err != nil {
			uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
			return err
		}

		// 3.4. Сохраняем запись
		appointment := &domain.Appointment{
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			ServiceID:     req.ServiceID,
			Date:          req.Date,
			StartTime:     slot,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s already taken on %s",
					slot, req.Date.Format(domain.DateFormat))
				return ErrSlotConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 4. Уведомление после фиксации транзакции; сбой отправки не отменяет запись
	uc.notify(result, svc)

	endTime, err := result.StartTime.AddMinutes(serviceDuration)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	resp := &Response{
		ID:            result.ID,
		CustomerName:  result.CustomerName,
		CustomerPhone: result.CustomerPhone,
		ServiceID:     result.ServiceID,
		Date:          result.Date,
		StartTime:     result.StartTime,
		EndTime:       endTime,
		CreatedAt:     result.CreatedAt,
	}
	if svc != nil {
		resp.ServiceName = &svc.Name
	}

	return resp, nil
}

// notify отправляет подтверждение записи в фоне
func (uc *UseCase) notify(appointment *domain.Appointment, svc *domain.Service) {
	booking := whatsapp.BookingContext{
		CustomerName:  appointment.CustomerName,
		CustomerPhone: appointment.CustomerPhone,
		ServiceName:   "Servicio",
		Date:          appointment.Date,
		StartTime:     appointment.StartTime,
	}
	if svc != nil {
		booking.ServiceName = svc.Name
	}

	id := appointment.ID

	go func() {
		if err := uc.notifier.SendBookingConfirmation(context.Background(), booking); err != nil {
			uc.logger.Error("CreateAppointment: failed to send confirmation for appointment id=%d: %v", id, err)
		}
	}()
}
