package calendar_events

import (
	"net/http"
	"net/url"
	"time"

	"github.com/jvz16/SalonBookingService/internal/api/handlers"
	"github.com/jvz16/SalonBookingService/internal/domain"
	"github.com/jvz16/SalonBookingService/internal/service/calendar/models"
)

const (
	msgInvalidQuery = "parámetros inválidos, se esperan fechas YYYY-MM-DD"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/calendar/events?from=...&to=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/calendar/events - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetEvents(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /admin/calendar/events - Failed to get events: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseQuery разбирает опциональные границы периода from, to
func parseQuery(query url.Values) (*models.GetEventsRequest, error) {
	req := &models.GetEventsRequest{}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	return req, nil
}
