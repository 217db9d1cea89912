package domain

import "github.com/jvz16/SalonBookingService/pkg/types"

// Half-open interval math shared by the availability engine and the booking
// validator so both run the exact same overlap rule.

// TimeInRange reports whether t falls inside [start, end).
// The boundary end itself is not inside: a booking ending exactly when
// another starts does not conflict.
func TimeInRange(t, start, end types.TimeString) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	return !t.IsBefore(start) && t.IsBefore(end)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Strict inequalities keep touching boundaries
// from counting as an overlap.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && aEnd.IsAfter(bStart)
}
