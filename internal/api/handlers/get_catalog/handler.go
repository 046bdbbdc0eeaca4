package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

const msgInvalidSpecies = "неизвестный вид животного, ожидается dog или cat"

// Handler списки справочников: мастера, услуги, доп. услуги, возрастные группы, породы
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Masters GET /api/v1/masters (только активные)
func (h *Handler) Masters(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListMasters(r.Context())
	if err != nil {
		h.fail(w, "/masters", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, fromMasters(items))
}

// Services GET /api/v1/services
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListServices(r.Context())
	if err != nil {
		h.fail(w, "/services", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, fromServices(items))
}

// ExtraServices GET /api/v1/extra-services
func (h *Handler) ExtraServices(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListExtraServices(r.Context())
	if err != nil {
		h.fail(w, "/extra-services", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, fromExtraServices(items))
}

// AgeGroups GET /api/v1/age-groups
func (h *Handler) AgeGroups(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListAgeGroups(r.Context())
	if err != nil {
		h.fail(w, "/age-groups", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, fromAgeGroups(items))
}

// Breeds GET /api/v1/breeds?species=dog
func (h *Handler) Breeds(w http.ResponseWriter, r *http.Request) {
	var species *domain.Species
	if raw := r.URL.Query().Get("species"); raw != "" {
		parsed, err := domain.ParseSpecies(raw)
		if err != nil {
			h.logger.Warn("GET /breeds - Invalid species: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidSpecies)
			return
		}
		species = &parsed
	}

	items, err := h.service.ListBreeds(r.Context(), species)
	if err != nil {
		h.fail(w, "/breeds", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, fromBreeds(items))
}

func (h *Handler) fail(w http.ResponseWriter, path string, err error) {
	h.logger.Error("GET %s - Failed to list: %v", path, err)
	handlers.RespondInternalError(w)
}
