package update_order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	updateOrder "github.com/m04kA/SMC-GroomingService/internal/usecase/update_order"
)

const (
	msgInvalidOrderID     = "некорректный ID заказа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidSize        = "неизвестный размер питомца"
	msgInvalidData        = "некорректные данные заказа"
	msgNotFound           = "заказ не найден"
)

var errorMessages = []handlers.ErrorMessage{
	{Err: updateOrder.ErrOrderNotFound, Message: msgNotFound},
}

type Handler struct {
	useCase UpdateOrderUseCase
	logger  Logger
}

func NewHandler(useCase UpdateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/orders/{orderId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["orderId"], 10, 64)
	if err != nil || orderID <= 0 {
		h.logger.Warn("PUT /orders/{id} - Invalid order ID: %q", mux.Vars(r)["orderId"])
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	var req UpdateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /orders/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("PUT /orders/{id} - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, errInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, errInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)
		default:
			handlers.RespondBadRequest(w, msgInvalidSize)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), orderID, useCaseReq)
	if err != nil {
		status := handlers.StatusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("PUT /orders/{id} - Failed to update order: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("PUT /orders/{id} - Update rejected: order_id=%d, status=%d, error=%v", orderID, status, err)
		handlers.RespondError(w, status, handlers.MessageFor(err, msgInvalidData, errorMessages, handlers.OrderErrorMessages))
		return
	}

	h.logger.Info("PUT /orders/{id} - Order updated successfully: order_id=%d", orderID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromOrderView(result))
}
