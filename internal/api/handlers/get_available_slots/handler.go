package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
)

const (
	msgInvalidMasterID  = "некорректный ID мастера"
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingParams    = "serviceId, petSize и date обязательны"
	msgInvalidSize      = "неизвестный размер питомца"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidData      = "некорректные параметры запроса"
)

var (
	errInvalidServiceID = errors.New("invalid serviceId")
	errInvalidSize      = errors.New("invalid petSize")
	errInvalidDate      = errors.New("invalid date")
)

type Handler struct {
	finder FreeSlotsFinder
	logger Logger
}

func NewHandler(finder FreeSlotsFinder, logger Logger) *Handler {
	return &Handler{
		finder: finder,
		logger: logger,
	}
}

// Handle GET /api/v1/masters/{masterId}/free-slots
// Query params: serviceId, petSize, date (YYYY-MM-DD), все обязательные
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	masterID, err := strconv.ParseInt(mux.Vars(r)["masterId"], 10, 64)
	if err != nil || masterID <= 0 {
		h.logger.Warn("GET /masters/{id}/free-slots - Invalid master ID: %q", mux.Vars(r)["masterId"])
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	query := r.URL.Query()
	serviceIDStr, petSizeStr, dateStr := query.Get("serviceId"), query.Get("petSize"), query.Get("date")
	if serviceIDStr == "" || petSizeStr == "" || dateStr == "" {
		h.logger.Warn("GET /masters/{id}/free-slots - Missing params: master_id=%d", masterID)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(masterID, serviceIDStr, petSizeStr, dateStr)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/free-slots - Invalid params: %v", err)
		switch {
		case errors.Is(err, errInvalidServiceID):
			handlers.RespondBadRequest(w, msgInvalidServiceID)
		case errors.Is(err, errInvalidSize):
			handlers.RespondBadRequest(w, msgInvalidSize)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.finder.Execute(r.Context(), useCaseReq)
	if err != nil {
		status := handlers.StatusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("GET /masters/{id}/free-slots - Failed to get slots: master_id=%d, service_id=%d, error=%v",
				masterID, useCaseReq.ServiceID, err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("GET /masters/{id}/free-slots - Rejected: master_id=%d, status=%d, error=%v", masterID, status, err)
		handlers.RespondError(w, status, handlers.MessageFor(err, msgInvalidData, handlers.OrderErrorMessages))
		return
	}

	h.logger.Info("GET /masters/{id}/free-slots - Slots retrieved successfully: master_id=%d, service_id=%d, slots_count=%d",
		masterID, useCaseReq.ServiceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
