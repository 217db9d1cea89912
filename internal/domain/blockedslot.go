package domain

import (
	"errors"
	"time"

	"github.com/jvz16/SalonBookingService/pkg/types"
)

var (
	// ErrAmbiguousBlockShape возвращается, когда запись комбинирует несколько форм блокировки
	ErrAmbiguousBlockShape = errors.New("blocked slot must be exactly one of: full-day, range, point")

	// ErrInvalidBlockRange возвращается, когда start_time >= end_time
	ErrInvalidBlockRange = errors.New("blocked slot range start must be before end")
)

// BlockedSlot represents an owner-declared unavailability for a date.
// Exactly one of three shapes is meant to be set:
//   - full-day: Time, StartTime and EndTime all empty
//   - range:    StartTime and EndTime set, blocking [StartTime, EndTime)
//   - point:    Time set, blocking that single slot value
//
// The shape is enforced on the admin write path, not by the schema, so the
// read path must stay defensive: check full-day first, then point, then range.
type BlockedSlot struct {
	ID        int64
	Date      time.Time
	Time      types.TimeString // point block, empty when unused
	StartTime types.TimeString // range block start, empty when unused
	EndTime   types.TimeString // range block end, empty when unused
	Reason    string
	CreatedAt time.Time
}

// IsFullDay reports whether the record blocks the whole day
func (b *BlockedSlot) IsFullDay() bool {
	return b.Time.IsZero() && b.StartTime.IsZero() && b.EndTime.IsZero()
}

// IsPoint reports whether the record blocks a single slot value
func (b *BlockedSlot) IsPoint() bool {
	return !b.Time.IsZero()
}

// IsRange reports whether the record blocks a half-open time range
func (b *BlockedSlot) IsRange() bool {
	return !b.StartTime.IsZero() && !b.EndTime.IsZero()
}

// Validate checks the mutual-exclusion invariant for the admin write path
func (b *BlockedSlot) Validate() error {
	hasPoint := !b.Time.IsZero()
	hasStart := !b.StartTime.IsZero()
	hasEnd := !b.EndTime.IsZero()

	// Полный день: все поля пустые
	if !hasPoint && !hasStart && !hasEnd {
		return nil
	}

	// Точечная блокировка: только time
	if hasPoint && !hasStart && !hasEnd {
		return b.Time.Validate()
	}

	// Диапазон: start_time и end_time, без time
	if !hasPoint && hasStart && hasEnd {
		if err := b.StartTime.Validate(); err != nil {
			return err
		}
		if err := b.EndTime.Validate(); err != nil {
			return err
		}
		if !b.StartTime.IsBefore(b.EndTime) {
			return ErrInvalidBlockRange
		}
		return nil
	}

	return ErrAmbiguousBlockShape
}

// HasFullDayBlock reports whether any of the records blocks the whole day
func HasFullDayBlock(blocks []*BlockedSlot) bool {
	for _, b := range blocks {
		if b.IsFullDay() {
			return true
		}
	}
	return false
}
