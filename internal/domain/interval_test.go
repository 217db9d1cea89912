package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeInRange(t *testing.T) {
	// half-open [start, end): start is in, end is out
	assert.True(t, TimeInRange("12:00", "12:00", "15:00"))
	assert.True(t, TimeInRange("14:59", "12:00", "15:00"))
	assert.False(t, TimeInRange("15:00", "12:00", "15:00"))
	assert.False(t, TimeInRange("11:59", "12:00", "15:00"))

	// empty bounds never match
	assert.False(t, TimeInRange("12:00", "", "15:00"))
	assert.False(t, TimeInRange("12:00", "12:00", ""))
}

func TestOverlaps(t *testing.T) {
	// back-to-back intervals do not conflict
	assert.False(t, Overlaps("10:00", "11:00", "11:00", "12:00"))
	assert.False(t, Overlaps("11:00", "12:00", "10:00", "11:00"))

	assert.True(t, Overlaps("10:00", "11:30", "11:00", "12:00"))
	assert.True(t, Overlaps("11:00", "12:00", "10:00", "11:30"))

	// containment
	assert.True(t, Overlaps("10:00", "13:00", "11:00", "12:00"))
	assert.True(t, Overlaps("11:00", "12:00", "10:00", "13:00"))

	// identical
	assert.True(t, Overlaps("10:00", "11:00", "10:00", "11:00"))

	// disjoint
	assert.False(t, Overlaps("08:00", "09:00", "10:00", "11:00"))
}
