package update_order

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
	"github.com/m04kA/SMC-GroomingService/internal/service/catalog"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering"
	updateOrder "github.com/m04kA/SMC-GroomingService/internal/usecase/update_order"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

type fakeUseCase struct {
	orderID int64
	got     *updateOrder.Request
	err     error
}

func (f *fakeUseCase) Execute(_ context.Context, orderID int64, req *updateOrder.Request) (*domain.OrderView, error) {
	f.orderID = orderID
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.OrderView{
		ID:        orderID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   "13:00",
		Price:     2900,
		Status:    domain.OrderStatusPlanned,
		MasterID:  req.MasterID,
		ServiceID: req.ServiceID,
	}, nil
}

const validBody = `{"masterId": 2, "serviceId": 1, "date": "2030-05-11", "startTime": "11:00", "petSize": "medium"}`

func serve(uc *fakeUseCase, path, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/orders/{orderId}", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPut)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, path, strings.NewReader(body)))
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "/api/v1/orders/7", validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), uc.orderID)
	require.NotNil(t, uc.got.PetSize)
	assert.Equal(t, domain.PetSizeMedium, *uc.got.PetSize)
	assert.Equal(t, time.Date(2030, 5, 11, 0, 0, 0, 0, time.UTC), uc.got.Date)
	assert.Contains(t, rec.Body.String(), `"startTime":"11:00"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"bad id", "/api/v1/orders/0", validBody, nil, http.StatusBadRequest, msgInvalidOrderID},
		{"bad body", "/api/v1/orders/1", `[]`, nil, http.StatusBadRequest, msgInvalidRequestBody},
		{"bad date", "/api/v1/orders/1", strings.Replace(validBody, "2030-05-11", "2030/05/11", 1), nil, http.StatusBadRequest, msgInvalidDate},
		{"bad time", "/api/v1/orders/1", strings.Replace(validBody, "11:00", "25:00", 1), nil, http.StatusBadRequest, msgInvalidTime},
		{"bad size", "/api/v1/orders/1", strings.Replace(validBody, "medium", "tiny", 1), nil, http.StatusBadRequest, msgInvalidSize},
		{"not found", "/api/v1/orders/1", validBody, updateOrder.ErrOrderNotFound, http.StatusNotFound, msgNotFound},
		{"occupied", "/api/v1/orders/1", validBody, ordering.ErrSlotOccupied, http.StatusConflict, "выбранное время у мастера занято"},
		{"no tariff", "/api/v1/orders/1", validBody, catalog.ErrTariffNotFound, http.StatusBadRequest, "нет тарифа для этой услуги и размера питомца"},
		{"internal", "/api/v1/orders/1", validBody, updateOrder.ErrInternal, http.StatusInternalServerError, "внутренняя ошибка сервера"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}
}
