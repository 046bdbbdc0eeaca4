package search_clients

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

const (
	msgMissingPhone = "не указан телефон"
	msgMissingName  = "не указано имя для поиска"
	msgNotFound     = "клиент не найден"
)

type Handler struct {
	directory ClientDirectory
	logger    Logger
}

func NewHandler(directory ClientDirectory, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// ByPhone GET /api/v1/clients/search/phone?phone=
func (h *Handler) ByPhone(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")

	client, err := h.directory.SearchByPhone(r.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("GET /clients/search/phone - Empty phone")
			handlers.RespondBadRequest(w, msgMissingPhone)
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Info("GET /clients/search/phone - Not found: phone=%q", phone)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("GET /clients/search/phone - Failed to search: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromClient(client))
}

// ByName GET /api/v1/clients/search/name?name=
func (h *Handler) ByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	items, err := h.directory.SearchByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			h.logger.Warn("GET /clients/search/name - Empty name")
			handlers.RespondBadRequest(w, msgMissingName)
			return
		}
		h.logger.Error("GET /clients/search/name - Failed to search: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/search/name - %d clients for %q", len(items), name)
	handlers.RespondJSON(w, http.StatusOK, fromClients(items))
}
