package create_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	createOrder "github.com/m04kA/SMC-GroomingService/internal/usecase/create_order"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidPet         = "некорректный вид или размер питомца"
	msgInvalidData        = "некорректные данные заказа"
	msgDuplicate          = "такой заказ уже создан"
)

var errorMessages = []handlers.ErrorMessage{
	{Err: createOrder.ErrDuplicateOrder, Message: msgDuplicate},
}

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /orders - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, errInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, errInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)
		default:
			handlers.RespondBadRequest(w, msgInvalidPet)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		status := handlers.StatusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("POST /orders - Failed to create order: master_id=%d, date=%s, error=%v",
				req.MasterID, req.Date, err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("POST /orders - Order rejected: master_id=%d, date=%s %s, status=%d, error=%v",
			req.MasterID, req.Date, req.StartTime, status, err)
		handlers.RespondError(w, status, handlers.MessageFor(err, msgInvalidData, errorMessages, handlers.OrderErrorMessages))
		return
	}

	h.logger.Info("POST /orders - Order created successfully: order_id=%d, master_id=%d", result.ID, result.MasterID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromOrderView(result))
}
