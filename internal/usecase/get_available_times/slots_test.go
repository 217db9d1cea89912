package get_available_times

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jvz16/SalonBookingService/internal/domain"
	"github.com/jvz16/SalonBookingService/pkg/types"
)

func appt(start types.TimeString, durationMinutes int) *domain.Appointment {
	return &domain.Appointment{
		CustomerName:           "Ana",
		CustomerPhone:          "88887777",
		Date:                   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:              start,
		ServiceDurationMinutes: &durationMinutes,
	}
}

func times(slots []types.TimeString) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func TestComputeFreeSlots_EmptyDay(t *testing.T) {
	free := computeFreeSlots(domain.DefaultBusinessHours(), nil, nil, 0)

	// all candidates, 08:00 through 20:00
	assert.Len(t, free, 13)
	assert.Equal(t, types.TimeString("08:00"), free[0])
	assert.Equal(t, types.TimeString("20:00"), free[12])
}

func TestComputeFreeSlots_FullDayBlock(t *testing.T) {
	blocks := []*domain.BlockedSlot{{}}

	free := computeFreeSlots(domain.DefaultBusinessHours(), blocks, nil, 0)

	assert.Empty(t, free)
}

func TestComputeFreeSlots_FullDayBlockWinsOverOtherRecords(t *testing.T) {
	blocks := []*domain.BlockedSlot{
		{Time: "14:00"},
		{},
	}

	free := computeFreeSlots(domain.DefaultBusinessHours(), blocks, []*domain.Appointment{appt("10:00", 60)}, 60)

	assert.Empty(t, free)
}

func TestComputeFreeSlots_PointBlockRemovesOnlyExactSlot(t *testing.T) {
	blocks := []*domain.BlockedSlot{{Time: "14:00"}}

	free := computeFreeSlots(domain.DefaultBusinessHours(), blocks, nil, 0)

	assert.NotContains(t, times(free), "14:00")
	assert.Contains(t, times(free), "13:00")
	assert.Contains(t, times(free), "15:00")
}

func TestComputeFreeSlots_PointBlockIgnoresServiceDuration(t *testing.T) {
	// a 90-minute service starting at 13:00 runs through the 14:00 point
	// block; point blocks only remove the matching slot value
	blocks := []*domain.BlockedSlot{{Time: "14:00"}}

	free := computeFreeSlots(domain.DefaultBusinessHours(), blocks, nil, 90)

	assert.Contains(t, times(free), "13:00")
	assert.NotContains(t, times(free), "14:00")
}

func TestComputeFreeSlots_RangeBlockHalfOpen(t *testing.T) {
	blocks := []*domain.BlockedSlot{{StartTime: "12:00", EndTime: "15:00"}}

	free := computeFreeSlots(domain.DefaultBusinessHours(), blocks, nil, 0)

	got := times(free)
	assert.NotContains(t, got, "12:00")
	assert.NotContains(t, got, "13:00")
	assert.NotContains(t, got, "14:00")
	// end boundary is open
	assert.Contains(t, got, "15:00")
	assert.Contains(t, got, "11:00")
}

func TestComputeFreeSlots_NoDuration_PointInBusyInterval(t *testing.T) {
	// a 90-minute appointment occupies [10:00, 11:30); without a service
	// duration the query tests slot values against busy intervals
	appointments := []*domain.Appointment{appt("10:00", 90)}

	free := computeFreeSlots(domain.DefaultBusinessHours(), nil, appointments, 0)

	got := times(free)
	assert.NotContains(t, got, "10:00")
	assert.NotContains(t, got, "11:00")
	assert.Contains(t, got, "12:00")
	assert.Contains(t, got, "09:00")
}

func TestComputeFreeSlots_WithDuration_IntervalOverlap(t *testing.T) {
	// existing appointment occupies [10:00, 11:00); a 90-minute candidate
	// starting at 09:00 would run until 10:30 and collide
	appointments := []*domain.Appointment{appt("10:00", 60)}

	free := computeFreeSlots(domain.DefaultBusinessHours(), nil, appointments, 90)

	got := times(free)
	assert.NotContains(t, got, "09:00")
	assert.NotContains(t, got, "10:00")
	assert.Contains(t, got, "11:00")
	assert.Contains(t, got, "08:00")
}

func TestComputeFreeSlots_WithDuration_FitsBeforeClose(t *testing.T) {
	free := computeFreeSlots(domain.DefaultBusinessHours(), nil, nil, 60)

	got := times(free)
	// 20:00 + 60 min would end past closing
	assert.NotContains(t, got, "20:00")
	assert.Contains(t, got, "19:00")

	free = computeFreeSlots(domain.DefaultBusinessHours(), nil, nil, 120)
	got = times(free)
	assert.NotContains(t, got, "19:00")
	assert.Contains(t, got, "18:00")
}

func TestComputeFreeSlots_AppointmentWithoutServiceUsesDefaultDuration(t *testing.T) {
	// service reference lost: the appointment still occupies a default hour
	appointment := &domain.Appointment{
		CustomerName:  "Ana",
		CustomerPhone: "88887777",
		StartTime:     "10:00",
	}

	free := computeFreeSlots(domain.DefaultBusinessHours(), nil, []*domain.Appointment{appointment}, 0)

	got := times(free)
	assert.NotContains(t, got, "10:00")
	assert.Contains(t, got, "11:00")
}

func TestComputeFreeSlots_Deterministic(t *testing.T) {
	blocks := []*domain.BlockedSlot{
		{Time: "14:00"},
		{StartTime: "08:00", EndTime: "10:00"},
	}
	appointments := []*domain.Appointment{appt("11:00", 60), appt("16:00", 90)}

	first := computeFreeSlots(domain.DefaultBusinessHours(), blocks, appointments, 60)
	second := computeFreeSlots(domain.DefaultBusinessHours(), blocks, appointments, 60)

	assert.Equal(t, first, second)

	// ascending order
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].IsBefore(first[i]))
	}
}
