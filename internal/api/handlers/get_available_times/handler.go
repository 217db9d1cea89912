package get_available_times

import (
	"errors"
	"net/http"

	"github.com/jvz16/SalonBookingService/internal/api/handlers"
	getAvailableTimes "github.com/jvz16/SalonBookingService/internal/usecase/get_available_times"
)

const (
	msgInvalidQuery    = "parámetros inválidos, se espera date=YYYY-MM-DD y service numérico opcional"
	msgServiceNotFound = "servicio no encontrado"
	msgInvalidInput    = "parámetros inválidos"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-times?date=YYYY-MM-DD&service=ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /available-times - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrServiceNotFound):
			h.logger.Warn("GET /available-times - Service not found: service_id=%v", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableTimes.ErrInvalidInput):
			h.logger.Warn("GET /available-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-times - Failed to get available times: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
