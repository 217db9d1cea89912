package get_available_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/jvz16/SalonBookingService/internal/domain"
	serviceRepo "github.com/jvz16/SalonBookingService/internal/infra/storage/service"
	"github.com/jvz16/SalonBookingService/pkg/types"
)

// UseCase use case для получения свободного времени на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockedSlotRepo BlockedSlotRepository
	serviceRepo     ServiceRepository
	hours           domain.BusinessHours
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockedSlotRepo BlockedSlotRepository,
	serviceRepo ServiceRepository,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockedSlotRepo: blockedSlotRepo,
		serviceRepo:     serviceRepo,
		hours:           hours,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободного времени.
// Результат консультативный: между ответом и созданием записи состояние может
// измениться, авторитетная проверка выполняется при создании записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем длительность услуги, если услуга указана
	serviceDuration := 0
	if req.ServiceID != nil {
		svc, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableTimes: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableTimes: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !svc.Active {
			uc.logger.Warn("GetAvailableTimes: service id=%d is inactive", *req.ServiceID)
			return nil, ErrServiceNotFound
		}
		serviceDuration = svc.DurationMinutes
	}

	// 3. Получаем блокировки на дату
	blocks, err := uc.blockedSlotRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get blocked slots for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}

	// Блокировка всего дня - записи можно не читать
	if domain.HasFullDayBlock(blocks) {
		uc.logger.Info("GetAvailableTimes: date=%s is fully blocked", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:      req.Date,
			ServiceID: req.ServiceID,
			Times:     []types.TimeString{},
		}, nil
	}

	// 4. Получаем записи на дату
	appointments, err := uc.appointmentRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get appointments for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Вычисляем свободные слоты
	free := computeFreeSlots(uc.hours, blocks, appointments, serviceDuration)

	uc.logger.Info("GetAvailableTimes: date=%s, service duration=%d, %d free of %d candidates",
		req.Date.Format(domain.DateFormat), serviceDuration, len(free), len(uc.hours.CandidateSlots()))

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Times:     free,
	}, nil
}
