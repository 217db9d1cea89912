package get_available_times

import (
	"github.com/jvz16/SalonBookingService/internal/domain"
	"github.com/jvz16/SalonBookingService/pkg/types"
)

// busyInterval занятый интервал [start, end) от существующей записи
type busyInterval struct {
	start types.TimeString
	end   types.TimeString
}

// computeFreeSlots вычисляет свободные слоты на дату.
// Чистая функция над снимком состояния: журнал записей и реестр блокировок
// передаются снаружи, поэтому результат детерминирован и повторный вызов
// без изменения состояния дает идентичный список.
//
// Правила (единый канонический набор, общий с валидатором бронирования):
//  1. Блокировка всего дня -> пустой список, без дальнейших вычислений.
//  2. Кандидаты берутся из политики рабочих часов (от открытия до закрытия
//     включительно; час закрытия - допустимое время НАЧАЛА).
//  3. Точечная блокировка убирает ТОЛЬКО совпадающий слот (точное сравнение,
//     а не пересечение интервалов). Это осознанная асимметрия: блокировка
//     14:00 не мешает 90-минутной услуге с началом в 13:30.
//  4. Диапазонная блокировка [start, end) убирает слоты, попадающие внутрь;
//     сам end не блокируется.
//  5. Записи занимают [start, start+duration); длительность услуги берется
//     из каталога, 60 минут - если ссылка на услугу потеряна. Слот-кандидат
//     с известной длительностью serviceDuration проверяется на пересечение
//     интервалов (строгие неравенства: граничащие интервалы не конфликтуют),
//     без длительности - только на попадание внутрь занятого интервала.
//  6. С известной длительностью убираются слоты, после которых услуга
//     не успевает закончиться к закрытию (ровно к закрытию - успевает).
func computeFreeSlots(
	hours domain.BusinessHours,
	blocks []*domain.BlockedSlot,
	appointments []*domain.Appointment,
	serviceDuration int,
) []types.TimeString {
	// Блокировка всего дня - короткое замыкание
	if domain.HasFullDayBlock(blocks) {
		return []types.TimeString{}
	}

	candidates := hours.CandidateSlots()

	// Точечные блокировки и диапазоны; формы проверяются в защитном порядке
	// (день -> точка -> диапазон), т.к. схема не запрещает их комбинировать
	pointBlocked := make(map[types.TimeString]struct{})
	var rangeBlocks []*domain.BlockedSlot
	for _, b := range blocks {
		if b.IsPoint() {
			pointBlocked[b.Time] = struct{}{}
			continue
		}
		if b.IsRange() {
			rangeBlocks = append(rangeBlocks, b)
		}
	}

	busy := busyIntervals(appointments)

	free := make([]types.TimeString, 0, len(candidates))

	for _, slot := range candidates {
		if _, ok := pointBlocked[slot]; ok {
			continue
		}

		if inBlockedRange(slot, rangeBlocks) {
			continue
		}

		if conflictsWithAppointments(slot, serviceDuration, busy) {
			continue
		}

		if serviceDuration > 0 && !hours.FitsBeforeClose(slot, serviceDuration) {
			continue
		}

		free = append(free, slot)
	}

	return free
}

// busyIntervals строит занятые интервалы [start, start+duration) из записей
func busyIntervals(appointments []*domain.Appointment) []busyInterval {
	intervals := make([]busyInterval, 0, len(appointments))

	for _, appt := range appointments {
		end, err := appt.EndTime()
		if err != nil {
			// Некорректное время в хранилище - пропускаем запись
			continue
		}
		intervals = append(intervals, busyInterval{start: appt.StartTime, end: end})
	}

	return intervals
}

// inBlockedRange проверяет попадание слота в диапазонную блокировку [start, end)
func inBlockedRange(slot types.TimeString, rangeBlocks []*domain.BlockedSlot) bool {
	for _, b := range rangeBlocks {
		if domain.TimeInRange(slot, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}

// conflictsWithAppointments проверяет конфликт слота с занятыми интервалами.
// С известной длительностью - пересечение интервалов [slot, slot+duration);
// без нее - попадание значения слота внутрь занятого интервала.
func conflictsWithAppointments(slot types.TimeString, serviceDuration int, busy []busyInterval) bool {
	if serviceDuration <= 0 {
		for _, b := range busy {
			if domain.TimeInRange(slot, b.start, b.end) {
				return true
			}
		}
		return false
	}

	slotEnd, err := slot.AddMinutes(serviceDuration)
	if err != nil {
		return true
	}

	for _, b := range busy {
		if domain.Overlaps(slot, slotEnd, b.start, b.end) {
			return true
		}
	}
	return false
}
