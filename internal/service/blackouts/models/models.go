package models

import (
	"fmt"
	"time"

	"github.com/jvz16/SalonBookingService/internal/domain"
	"github.com/jvz16/SalonBookingService/pkg/types"
)

// Request модели

// CreateBlockedSlotRequest запрос на создание блокировки.
// Форма определяется заполненными полями: все времена пустые - весь день,
// только time - точечная, startTime+endTime - диапазон.
type CreateBlockedSlotRequest struct {
	Date      string  `json:"date"`                // "2025-10-15"
	Time      *string `json:"time,omitempty"`      // "14:00"
	StartTime *string `json:"startTime,omitempty"` // "12:00"
	EndTime   *string `json:"endTime,omitempty"`   // "15:00"
	Reason    string  `json:"reason,omitempty"`
}

// ToDomainBlockedSlot конвертирует request в domain модель
func (r *CreateBlockedSlotRequest) ToDomainBlockedSlot() (*domain.BlockedSlot, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", r.Date)
	}

	block := &domain.BlockedSlot{
		Date:   date,
		Reason: r.Reason,
	}

	if block.Time, err = parseOptionalTime(r.Time); err != nil {
		return nil, err
	}
	if block.StartTime, err = parseOptionalTime(r.StartTime); err != nil {
		return nil, err
	}
	if block.EndTime, err = parseOptionalTime(r.EndTime); err != nil {
		return nil, err
	}

	return block, nil
}

// ListBlockedSlotsRequest запрос на получение блокировок за период
type ListBlockedSlotsRequest struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// parseOptionalTime разбирает опциональное время "HH:MM"
func parseOptionalTime(s *string) (types.TimeString, error) {
	if s == nil || *s == "" {
		return "", nil
	}
	t, err := types.NewTimeStringFromString(*s)
	if err != nil {
		return "", fmt.Errorf("invalid time %q", *s)
	}
	return t, nil
}

// Response модели

// BlockedSlotResponse ответ с данными блокировки
type BlockedSlotResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Kind      string  `json:"kind"` // "full_day" | "range" | "point"
	Time      *string `json:"time,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Reason    string  `json:"reason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// BlockedSlotListResponse ответ со списком блокировок
type BlockedSlotListResponse struct {
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

// Методы конвертации

// FromDomainBlockedSlot конвертирует domain модель в DTO
func FromDomainBlockedSlot(b *domain.BlockedSlot) *BlockedSlotResponse {
	if b == nil {
		return nil
	}

	resp := &BlockedSlotResponse{
		ID:        b.ID,
		Date:      b.Date.Format(domain.DateFormat),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}

	// Формы проверяются в защитном порядке: день -> точка -> диапазон
	switch {
	case b.IsFullDay():
		resp.Kind = "full_day"
	case b.IsPoint():
		resp.Kind = "point"
		t := b.Time.String()
		resp.Time = &t
	default:
		resp.Kind = "range"
		st := b.StartTime.String()
		et := b.EndTime.String()
		resp.StartTime = &st
		resp.EndTime = &et
	}

	return resp
}

// FromDomainBlockedSlotList конвертирует список domain моделей в DTO
func FromDomainBlockedSlotList(blocks []*domain.BlockedSlot) *BlockedSlotListResponse {
	result := make([]BlockedSlotResponse, 0, len(blocks))
	for _, b := range blocks {
		result = append(result, *FromDomainBlockedSlot(b))
	}
	return &BlockedSlotListResponse{BlockedSlots: result}
}
