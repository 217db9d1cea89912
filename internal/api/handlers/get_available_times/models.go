package get_available_times

import (
	"net/url"
	"strconv"
	"time"

	"github.com/jvz16/SalonBookingService/internal/domain"
	getAvailableTimes "github.com/jvz16/SalonBookingService/internal/usecase/get_available_times"
)

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	Date      string   `json:"date"`                // "2025-10-15"
	ServiceID *int64   `json:"serviceId,omitempty"`
	Times     []string `json:"times"`               // ["08:00", "09:00", ...]
}

// parseQuery разбирает query-параметры date (обязательный) и service (опциональный)
func parseQuery(query url.Values) (*getAvailableTimes.Request, error) {
	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		return nil, err
	}

	req := &getAvailableTimes.Request{Date: date}

	if raw := query.Get("service"); raw != "" {
		serviceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ServiceID = &serviceID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	times := make([]string, 0, len(resp.Times))
	for _, t := range resp.Times {
		times = append(times, t.String())
	}

	return &AvailableTimesResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		ServiceID: resp.ServiceID,
		Times:     times,
	}
}
