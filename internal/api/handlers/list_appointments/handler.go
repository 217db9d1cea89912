package list_appointments

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/jvz16/SalonBookingService/internal/api/handlers"
	"github.com/jvz16/SalonBookingService/internal/domain"
	"github.com/jvz16/SalonBookingService/internal/service/appointments"
	"github.com/jvz16/SalonBookingService/internal/service/appointments/models"
)

const (
	msgInvalidQuery = "parámetros inválidos, se esperan fechas YYYY-MM-DD"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments?date=...|from=...&to=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/appointments - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /admin/appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseQuery разбирает опциональные фильтры date, from, to
func parseQuery(query url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{}

	var err error
	if req.Date, err = parseOptionalDate(query.Get("date")); err != nil {
		return nil, err
	}
	if req.DateFrom, err = parseOptionalDate(query.Get("from")); err != nil {
		return nil, err
	}
	if req.DateTo, err = parseOptionalDate(query.Get("to")); err != nil {
		return nil, err
	}

	return req, nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
