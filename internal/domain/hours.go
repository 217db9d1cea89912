package domain

import (
	"fmt"

	"github.com/jvz16/SalonBookingService/pkg/types"
)

// BusinessHours is the static business-hours policy: opening hour, closing
// hour and slot step. The canonical slot step is 60 minutes (hour-aligned
// slots). The closing hour itself is a valid slot *start*; whether a service
// still fits before close is a separate check.
type BusinessHours struct {
	OpenHour        int
	CloseHour       int
	SlotStepMinutes int
}

// DefaultBusinessHours returns the canonical 08:00-20:00 policy with
// hour-aligned slots
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		OpenHour:        DefaultOpenHour,
		CloseHour:       DefaultCloseHour,
		SlotStepMinutes: DefaultSlotStepMinutes,
	}
}

// Validate проверяет согласованность политики рабочих часов
func (h BusinessHours) Validate() error {
	if h.OpenHour < 0 || h.OpenHour > 23 {
		return fmt.Errorf("business hours: open_hour out of range: %d", h.OpenHour)
	}
	if h.CloseHour < 0 || h.CloseHour > 23 {
		return fmt.Errorf("business hours: close_hour out of range: %d", h.CloseHour)
	}
	if h.OpenHour >= h.CloseHour {
		return fmt.Errorf("business hours: open_hour %d must be before close_hour %d", h.OpenHour, h.CloseHour)
	}
	if h.SlotStepMinutes <= 0 || h.SlotStepMinutes > 60 {
		return fmt.Errorf("business hours: invalid slot step: %d", h.SlotStepMinutes)
	}
	return nil
}

// OpenTime returns the first candidate slot value
func (h BusinessHours) OpenTime() types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:00", h.OpenHour))
}

// CloseTime returns the closing time. It is itself a bookable slot start;
// services just have to finish by it.
func (h BusinessHours) CloseTime() types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:00", h.CloseHour))
}

// CandidateSlots returns the canonical, date-independent list of slot-start
// times: open..close inclusive, stepped by SlotStepMinutes, ascending.
func (h BusinessHours) CandidateSlots() []types.TimeString {
	closeTime := h.CloseTime()

	slots := make([]types.TimeString, 0)
	current := h.OpenTime()
	for {
		slots = append(slots, current)
		if current == closeTime {
			break
		}
		next, err := current.AddMinutes(h.SlotStepMinutes)
		if err != nil || next.IsAfter(closeTime) || !next.IsAfter(current) {
			break
		}
		current = next
	}
	return slots
}

// Contains reports whether t is a valid candidate slot value: aligned to the
// slot step and inside [open, close]
func (h BusinessHours) Contains(t types.TimeString) bool {
	for _, slot := range h.CandidateSlots() {
		if slot == t {
			return true
		}
	}
	return false
}

// FitsBeforeClose reports whether a service of the given duration starting at
// t finishes by closing time. Finishing exactly at close is allowed.
// Computed in minutes since midnight so long durations cannot wrap past
// midnight and falsely pass.
func (h BusinessHours) FitsBeforeClose(t types.TimeString, durationMinutes int) bool {
	return t.MinutesSinceMidnight()+durationMinutes <= h.CloseHour*60
}
