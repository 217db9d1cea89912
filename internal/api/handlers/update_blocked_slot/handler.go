package update_blocked_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jvz16/SalonBookingService/internal/api/handlers"
	"github.com/jvz16/SalonBookingService/internal/service/blackouts"
	"github.com/jvz16/SalonBookingService/internal/service/blackouts/models"
)

const (
	msgInvalidBlockedSlotID = "identificador de bloqueo inválido"
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgInvalidInput         = "datos del bloqueo inválidos"
	msgNotFound             = "bloqueo no encontrado"
)

type Handler struct {
	service BlackoutService
	logger  Logger
}

func NewHandler(service BlackoutService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/blocked-slots/{blockedSlotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blockedSlotID, err := strconv.ParseInt(vars["blockedSlotId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/blocked-slots/{id} - Invalid blocked slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockedSlotID)
		return
	}

	var req models.CreateBlockedSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/blocked-slots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), blockedSlotID, &req)
	if err != nil {
		switch {
		case errors.Is(err, blackouts.ErrBlockedSlotNotFound):
			h.logger.Warn("PUT /admin/blocked-slots/{id} - Blocked slot not found: blocked_slot_id=%d", blockedSlotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, blackouts.ErrInvalidInput):
			h.logger.Warn("PUT /admin/blocked-slots/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/blocked-slots/{id} - Failed to update blocked slot: blocked_slot_id=%d, error=%v",
				blockedSlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
