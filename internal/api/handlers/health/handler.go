package health

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
)

// Pinger проверка доступности хранилища
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Error(format string, v ...interface{})
}

type Response struct {
	Status string `json:"status"`
}

type Handler struct {
	pinger Pinger
	logger Logger
}

// NewHandler pinger может быть nil (memory-хранилище)
func NewHandler(pinger Pinger, logger Logger) *Handler {
	return &Handler{pinger: pinger, logger: logger}
}

// Handle GET /api/v1/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.PingContext(r.Context()); err != nil {
			h.logger.Error("GET /health - Database unavailable: %v", err)
			handlers.RespondJSON(w, http.StatusServiceUnavailable, Response{Status: "UNAVAILABLE"})
			return
		}
	}
	handlers.RespondJSON(w, http.StatusOK, Response{Status: "OK"})
}
