package set_order_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering"
	setOrderStatus "github.com/m04kA/SMC-GroomingService/internal/usecase/set_order_status"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

type fakeUseCase struct {
	orderID int64
	status  string
	err     error
}

func (f *fakeUseCase) Execute(_ context.Context, orderID int64, status string) (*domain.OrderView, error) {
	f.orderID = orderID
	f.status = status
	if f.err != nil {
		return nil, f.err
	}
	return &domain.OrderView{
		ID:        orderID,
		Date:      time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:30",
		Status:    domain.OrderStatus(status),
	}, nil
}

func serve(uc *fakeUseCase, path, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/orders/{orderId}/status", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPatch)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body)))
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "/api/v1/orders/12/status", `{"status":"done"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(12), uc.orderID)
	assert.Equal(t, "done", uc.status)
	assert.Contains(t, rec.Body.String(), `"status":"done"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		err        error
		wantStatus int
	}{
		{"bad id", "/api/v1/orders/abc/status", `{"status":"done"}`, nil, http.StatusBadRequest},
		{"bad body", "/api/v1/orders/1/status", `status=done`, nil, http.StatusBadRequest},
		{"unknown status", "/api/v1/orders/1/status", `{"status":"archived"}`, domain.ErrUnknownStatus, http.StatusBadRequest},
		{"not found", "/api/v1/orders/1/status", `{"status":"done"}`, setOrderStatus.ErrOrderNotFound, http.StatusNotFound},
		{"done to cancelled", "/api/v1/orders/1/status", `{"status":"cancelled"}`, domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{"slot taken", "/api/v1/orders/1/status", `{"status":"planned"}`, ordering.ErrSlotOccupied, http.StatusConflict},
		{"internal", "/api/v1/orders/1/status", `{"status":"planned"}`, setOrderStatus.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":`)
		})
	}
}
