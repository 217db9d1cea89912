package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvz16/SalonBookingService/pkg/types"
)

func TestBusinessHours_CandidateSlots(t *testing.T) {
	hours := DefaultBusinessHours()

	slots := hours.CandidateSlots()

	require.Len(t, slots, 13) // 08:00 .. 20:00 inclusive
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("20:00"), slots[len(slots)-1])

	// ascending, strictly increasing
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]))
	}
}

func TestBusinessHours_CandidateSlots_CustomStep(t *testing.T) {
	hours := BusinessHours{OpenHour: 9, CloseHour: 11, SlotStepMinutes: 30}

	slots := hours.CandidateSlots()

	expected := []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00"}
	assert.Equal(t, expected, slots)
}

func TestBusinessHours_Contains(t *testing.T) {
	hours := DefaultBusinessHours()

	assert.True(t, hours.Contains("08:00"))
	assert.True(t, hours.Contains("20:00"))
	assert.False(t, hours.Contains("07:00"))
	assert.False(t, hours.Contains("21:00"))
	assert.False(t, hours.Contains("10:30")) // not aligned to the hour grid
}

func TestBusinessHours_FitsBeforeClose(t *testing.T) {
	hours := DefaultBusinessHours()

	// finishing exactly at close is allowed
	assert.True(t, hours.FitsBeforeClose("19:00", 60))
	assert.False(t, hours.FitsBeforeClose("19:00", 90))
	assert.False(t, hours.FitsBeforeClose("20:00", 60))
	assert.True(t, hours.FitsBeforeClose("08:00", 720))

	// long durations must not wrap past midnight and falsely pass
	assert.False(t, hours.FitsBeforeClose("19:00", 600))
}

func TestBusinessHours_Validate(t *testing.T) {
	require.NoError(t, DefaultBusinessHours().Validate())

	assert.Error(t, BusinessHours{OpenHour: 20, CloseHour: 8, SlotStepMinutes: 60}.Validate())
	assert.Error(t, BusinessHours{OpenHour: 8, CloseHour: 20, SlotStepMinutes: 0}.Validate())
	assert.Error(t, BusinessHours{OpenHour: -1, CloseHour: 20, SlotStepMinutes: 60}.Validate())
}
