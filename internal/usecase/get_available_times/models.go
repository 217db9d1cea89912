package get_available_times

import (
	"time"

	"github.com/jvz16/SalonBookingService/pkg/types"
)

// Request модель запроса свободных слотов
type Request struct {
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
	ServiceID *int64    // ID услуги (опционально; влияет на проверку "успевает до закрытия")
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date      time.Time          // Дата запроса
	ServiceID *int64             // ID услуги, если была указана
	Times     []types.TimeString // Свободные слоты по возрастанию, без дубликатов
}
