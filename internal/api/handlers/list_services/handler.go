package list_services

import (
	"net/http"

	"github.com/jvz16/SalonBookingService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger

	// activeOnly=true для публичной витрины, false для админ-панели
	activeOnly bool
}

func NewHandler(service CatalogService, logger Logger, activeOnly bool) *Handler {
	return &Handler{
		service:    service,
		logger:     logger,
		activeOnly: activeOnly,
	}
}

// Handle GET /api/v1/services и GET /api/v1/admin/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), h.activeOnly)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
