package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockedSlot_Shapes(t *testing.T) {
	fullDay := &BlockedSlot{Date: time.Now()}
	assert.True(t, fullDay.IsFullDay())
	assert.False(t, fullDay.IsPoint())
	assert.False(t, fullDay.IsRange())

	point := &BlockedSlot{Date: time.Now(), Time: "14:00"}
	assert.False(t, point.IsFullDay())
	assert.True(t, point.IsPoint())
	assert.False(t, point.IsRange())

	rng := &BlockedSlot{Date: time.Now(), StartTime: "12:00", EndTime: "15:00"}
	assert.False(t, rng.IsFullDay())
	assert.False(t, rng.IsPoint())
	assert.True(t, rng.IsRange())
}

func TestBlockedSlot_Validate(t *testing.T) {
	require.NoError(t, (&BlockedSlot{}).Validate())
	require.NoError(t, (&BlockedSlot{Time: "14:00"}).Validate())
	require.NoError(t, (&BlockedSlot{StartTime: "12:00", EndTime: "15:00"}).Validate())

	// mixing point and range is ambiguous
	err := (&BlockedSlot{Time: "14:00", StartTime: "12:00", EndTime: "15:00"}).Validate()
	assert.ErrorIs(t, err, ErrAmbiguousBlockShape)

	// half a range is ambiguous too
	err = (&BlockedSlot{StartTime: "12:00"}).Validate()
	assert.ErrorIs(t, err, ErrAmbiguousBlockShape)

	// start must be strictly before end
	err = (&BlockedSlot{StartTime: "15:00", EndTime: "12:00"}).Validate()
	assert.ErrorIs(t, err, ErrInvalidBlockRange)

	err = (&BlockedSlot{StartTime: "12:00", EndTime: "12:00"}).Validate()
	assert.ErrorIs(t, err, ErrInvalidBlockRange)
}

func TestHasFullDayBlock(t *testing.T) {
	assert.False(t, HasFullDayBlock(nil))
	assert.False(t, HasFullDayBlock([]*BlockedSlot{{Time: "14:00"}}))
	assert.True(t, HasFullDayBlock([]*BlockedSlot{
		{Time: "14:00"},
		{}, // full day
	}))
}
