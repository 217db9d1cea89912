package delete_blocked_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jvz16/SalonBookingService/internal/api/handlers"
	"github.com/jvz16/SalonBookingService/internal/service/blackouts"
)

const (
	msgInvalidBlockedSlotID = "identificador de bloqueo inválido"
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

// Handle DELETE /api/v1/admin/blocked-slots/{blockedSlotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blockedSlotID, err := strconv.ParseInt(vars["blockedSlotId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-slots/{id} - Invalid blocked slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockedSlotID)
		return
	}

	if err := h.service.Delete(r.Context(), blockedSlotID); err != nil {
		switch {
		case errors.Is(err, blackouts.ErrBlockedSlotNotFound):
			h.logger.Warn("DELETE /admin/blocked-slots/{id} - Blocked slot not found: blocked_slot_id=%d", blockedSlotID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/blocked-slots/{id} - Failed to delete blocked slot: blocked_slot_id=%d, error=%v",
				blockedSlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
