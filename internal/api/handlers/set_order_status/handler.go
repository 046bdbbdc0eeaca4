package set_order_status

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	setOrderStatus "github.com/m04kA/SMC-GroomingService/internal/usecase/set_order_status"
)

const (
	msgInvalidOrderID     = "некорректный ID заказа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректный статус заказа"
	msgNotFound           = "заказ не найден"
	msgSlotOccupied       = "время заказа уже занято другим заказом"
)

var errorMessages = []handlers.ErrorMessage{
	{Err: setOrderStatus.ErrOrderNotFound, Message: msgNotFound},
}

type Handler struct {
	useCase SetOrderStatusUseCase
	logger  Logger
}

func NewHandler(useCase SetOrderStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/orders/{orderId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["orderId"], 10, 64)
	if err != nil || orderID <= 0 {
		h.logger.Warn("PATCH /orders/{id}/status - Invalid order ID: %q", mux.Vars(r)["orderId"])
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	var req SetStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /orders/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), orderID, req.Status)
	if err != nil {
		status := handlers.StatusForError(err)
		switch status {
		case http.StatusInternalServerError:
			h.logger.Error("PATCH /orders/{id}/status - Failed to set status: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		case http.StatusConflict:
			h.logger.Warn("PATCH /orders/{id}/status - Slot occupied: order_id=%d, error=%v", orderID, err)
			handlers.RespondConflict(w, msgSlotOccupied)
		default:
			h.logger.Warn("PATCH /orders/{id}/status - Status rejected: order_id=%d, status=%q, error=%v",
				orderID, req.Status, err)
			handlers.RespondError(w, status, handlers.MessageFor(err, msgInvalidData, errorMessages, handlers.OrderErrorMessages))
		}
		return
	}

	h.logger.Info("PATCH /orders/{id}/status - Status changed: order_id=%d, status=%s", orderID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromOrderView(result))
}
