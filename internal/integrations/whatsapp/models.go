package whatsapp

import (
	"time"

	"github.com/jvz16/SalonBookingService/pkg/types"
)

// BookingContext контекст записи для формирования уведомлений.
// Передается из usecase, чтобы клиент не зависел от доменных моделей.
type BookingContext struct {
	CustomerName  string
	CustomerPhone string
	ServiceName   string // "Servicio", если услуга не указана
	Date          time.Time
	StartTime     types.TimeString
}

// twilioMessageResponse ответ Twilio Messages API (используются только поля ошибок)
type twilioMessageResponse struct {
	SID          string  `json:"sid"`
	Status       string  `json:"status"`
	ErrorCode    *int    `json:"error_code"`
	ErrorMessage *string `json:"error_message"`
}

// formatDate формат даты в сообщениях: DD/MM/YYYY
func formatDate(d time.Time) string {
	return d.Format("02/01/2006")
}
