package create_appointment

import (
	"time"

	"github.com/jvz16/SalonBookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerName  string    // Имя клиента
	CustomerPhone string    // Телефон клиента
	ServiceID     *int64    // ID услуги (опционально)
	Date          time.Time // Дата записи (без времени)
	StartTime     string    // Время начала как прислал клиент, например "10:00"
}

// Response модель ответа с созданной записью
type Response struct {
	ID            int64            // ID созданной записи
	CustomerName  string           // Имя клиента
	CustomerPhone string           // Телефон клиента
	ServiceID     *int64           // ID услуги
	ServiceName   *string          // Название услуги (если указана)
	Date          time.Time        // Дата записи
	StartTime     types.TimeString // Время начала
	EndTime       types.TimeString // Время окончания (начало + длительность)
	CreatedAt     time.Time        // Время создания
}
