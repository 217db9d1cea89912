package models

import "time"

// GetEventsRequest запрос на ленту событий календаря за период
type GetEventsRequest struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// Event событие календаря в формате, который понимает FullCalendar.
// Записи отображаются как обычные события цветом услуги, блокировки -
// как фоновые события серым цветом.
type Event struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Start   string `json:"start"`             // "2025-10-15T10:00"
	End     string `json:"end"`               // "2025-10-15T11:00"
	Color   string `json:"color"`
	Display string `json:"display,omitempty"` // "background" для блокировок
}

// EventListResponse ответ со списком событий
type EventListResponse struct {
	Events []Event `json:"events"`
}
