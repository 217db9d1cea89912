package create_appointment

import (
	"fmt"
	"strings"

	"github.com/jvz16/SalonBookingService/internal/domain"
	"github.com/jvz16/SalonBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: customer name must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if len(req.CustomerPhone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: customer phone must not exceed %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.StartTime) == "" {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	return nil
}

// validateSlot авторитетная проверка запрашиваемого времени против снимка
// состояния дня. Проверки упорядочены, возвращается первая нарушенная:
// формат -> блокировки -> рабочие часы -> укладывается до закрытия ->
// конфликт с записями. Тот же канонический набор правил, что и у расчета
// свободных слотов, поэтому время из рекомендательного списка проходит
// проверку при неизменном состоянии.
func validateSlot(
	startTime string,
	hours domain.BusinessHours,
	blocks []*domain.BlockedSlot,
	appointments []*domain.Appointment,
	serviceDuration int,
) (types.TimeString, error) {
	// 1. Разбор времени
	slot, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, startTime)
	}

	// 2. Блокировка всего дня
	if domain.HasFullDayBlock(blocks) {
		return "", ErrDayBlocked
	}

	for _, b := range blocks {
		// 3. Точечная блокировка - только точное совпадение
		if b.IsPoint() && b.Time == slot {
			return "", ErrSlotBlocked
		}
		// 4. Диапазонная блокировка [start, end)
		if b.IsRange() && domain.TimeInRange(slot, b.StartTime, b.EndTime) {
			return "", ErrSlotBlocked
		}
	}

	// 5. Время должно быть слотом рабочих часов
	if !hours.Contains(slot) {
		return "", ErrOutsideBusinessHours
	}

	// 6. Услуга должна успеть закончиться до закрытия
	if !hours.FitsBeforeClose(slot, serviceDuration) {
		return "", ErrServiceDoesNotFit
	}

	// 7. Пересечение с существующими записями [start, start+duration)
	slotEnd, err := slot.AddMinutes(serviceDuration)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}

	for _, appt := range appointments {
		apptEnd, err := appt.EndTime()
		if err != nil {
			// Некорректное время в хранилище не должно блокировать запись
			continue
		}
		if domain.Overlaps(slot, slotEnd, appt.StartTime, apptEnd) {
			return "", ErrSlotConflict
		}
	}

	return slot, nil
}
