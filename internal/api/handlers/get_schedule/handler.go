package get_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	getSchedule "github.com/m04kA/SMC-GroomingService/internal/usecase/get_schedule"
)

const (
	msgInvalidParams    = "некорректные параметры запроса: dateFrom и dateTo в формате YYYY-MM-DD, masterId - число"
	msgInvalidDateRange = "dateFrom не может быть позже dateTo"
)

var errorMessages = []handlers.ErrorMessage{
	{Err: getSchedule.ErrInvalidDateRange, Message: msgInvalidDateRange},
}

type Handler struct {
	useCase GetScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/orders/schedule
// Query params: dateFrom, dateTo, masterId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req, err := ToUseCaseRequest(query.Get("dateFrom"), query.Get("dateTo"), query.Get("masterId"))
	if err != nil {
		h.logger.Warn("GET /orders/schedule - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	views, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		status := handlers.StatusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("GET /orders/schedule - Failed to get schedule: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("GET /orders/schedule - Rejected: %v", err)
		handlers.RespondError(w, status, handlers.MessageFor(err, msgInvalidParams, errorMessages))
		return
	}

	h.logger.Info("GET /orders/schedule - %d orders", len(views))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromOrderViews(views))
}
