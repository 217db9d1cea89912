package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvz16/SalonBookingService/internal/domain"
	"github.com/jvz16/SalonBookingService/pkg/types"
)

func appt(start types.TimeString, durationMinutes int) *domain.Appointment {
	return &domain.Appointment{
		CustomerName:           "Ana",
		CustomerPhone:          "88887777",
		StartTime:              start,
		ServiceDurationMinutes: &durationMinutes,
	}
}

func TestValidateRequest(t *testing.T) {
	valid := &Request{
		CustomerName:  "Ana",
		CustomerPhone: "88887777",
		Date:          time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
	}
	require.NoError(t, validateRequest(valid))

	cases := []struct {
		name string
		mut  func(r *Request)
	}{
		{"empty name", func(r *Request) { r.CustomerName = "  " }},
		{"empty phone", func(r *Request) { r.CustomerPhone = "" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty time", func(r *Request) { r.StartTime = "" }},
		{"negative service id", func(r *Request) { id := int64(-1); r.ServiceID = &id }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := *valid
			tc.mut(&req)
			assert.ErrorIs(t, validateRequest(&req), ErrInvalidInput)
		})
	}
}

func TestValidateSlot_InvalidTime(t *testing.T) {
	_, err := validateSlot("25:99", domain.DefaultBusinessHours(), nil, nil, 60)
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = validateSlot("10:00am", domain.DefaultBusinessHours(), nil, nil, 60)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestValidateSlot_DayBlocked(t *testing.T) {
	blocks := []*domain.BlockedSlot{{}}

	_, err := validateSlot("10:00", domain.DefaultBusinessHours(), blocks, nil, 60)
	assert.ErrorIs(t, err, ErrDayBlocked)
}

func TestValidateSlot_PointBlock(t *testing.T) {
	blocks := []*domain.BlockedSlot{{Time: "14:00"}}

	_, err := validateSlot("14:00", domain.DefaultBusinessHours(), blocks, nil, 60)
	assert.ErrorIs(t, err, ErrSlotBlocked)

	// the point only blocks its exact value; a long service starting
	// earlier passes right through it
	slot, err := validateSlot("13:00", domain.DefaultBusinessHours(), blocks, nil, 90)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("13:00"), slot)
}

func TestValidateSlot_RangeBlock(t *testing.T) {
	blocks := []*domain.BlockedSlot{{StartTime: "12:00", EndTime: "15:00"}}

	for _, blocked := range []string{"12:00", "13:00", "14:00"} {
		_, err := validateSlot(blocked, domain.DefaultBusinessHours(), blocks, nil, 60)
		assert.ErrorIs(t, err, ErrSlotBlocked, "time %s", blocked)
	}

	// half-open: the end itself is free
	_, err := validateSlot("15:00", domain.DefaultBusinessHours(), blocks, nil, 60)
	assert.NoError(t, err)
}

func TestValidateSlot_OutsideBusinessHours(t *testing.T) {
	for _, outside := range []string{"07:00", "21:00", "10:30"} {
		_, err := validateSlot(outside, domain.DefaultBusinessHours(), nil, nil, 60)
		assert.ErrorIs(t, err, ErrOutsideBusinessHours, "time %s", outside)
	}
}

func TestValidateSlot_ServiceDoesNotFit(t *testing.T) {
	_, err := validateSlot("20:00", domain.DefaultBusinessHours(), nil, nil, 60)
	assert.ErrorIs(t, err, ErrServiceDoesNotFit)

	_, err = validateSlot("19:00", domain.DefaultBusinessHours(), nil, nil, 90)
	assert.ErrorIs(t, err, ErrServiceDoesNotFit)

	// finishing exactly at close is fine
	_, err = validateSlot("19:00", domain.DefaultBusinessHours(), nil, nil, 60)
	assert.NoError(t, err)
}

func TestValidateSlot_Conflict(t *testing.T) {
	appointments := []*domain.Appointment{appt("10:00", 60)}

	_, err := validateSlot("10:00", domain.DefaultBusinessHours(), nil, appointments, 60)
	assert.ErrorIs(t, err, ErrSlotConflict)

	// a 90-minute service at 09:00 would still be running at 10:00
	_, err = validateSlot("09:00", domain.DefaultBusinessHours(), nil, appointments, 90)
	assert.ErrorIs(t, err, ErrSlotConflict)

	// back-to-back is allowed
	_, err = validateSlot("11:00", domain.DefaultBusinessHours(), nil, appointments, 60)
	assert.NoError(t, err)

	_, err = validateSlot("09:00", domain.DefaultBusinessHours(), nil, appointments, 60)
	assert.NoError(t, err)
}

func TestValidateSlot_CheckOrder(t *testing.T) {
	// a blocked day wins over any later check
	blocks := []*domain.BlockedSlot{{}, {Time: "14:00"}}
	appointments := []*domain.Appointment{appt("14:00", 60)}

	_, err := validateSlot("14:00", domain.DefaultBusinessHours(), blocks, appointments, 60)
	assert.ErrorIs(t, err, ErrDayBlocked)

	// block wins over conflict
	_, err = validateSlot("14:00", domain.DefaultBusinessHours(),
		[]*domain.BlockedSlot{{Time: "14:00"}}, appointments, 60)
	assert.ErrorIs(t, err, ErrSlotBlocked)
}
