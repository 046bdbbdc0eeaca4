package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/service/catalog"
	getAvailableSlots "github.com/m04kA/SMC-GroomingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

type fakeUseCase struct {
	got *getAvailableSlots.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &getAvailableSlots.Response{
		Date:            req.Date,
		MasterID:        req.MasterID,
		ServiceID:       req.ServiceID,
		PetSize:         req.PetSize,
		DurationMinutes: 120,
		BasePrice:       2900,
		Slots: []getAvailableSlots.Slot{
			{StartTime: "09:00", EndTime: "11:00"},
			{StartTime: "13:30", EndTime: "15:30"},
		},
	}, nil
}

func serve(uc *fakeUseCase, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/masters/{masterId}/free-slots", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "/api/v1/masters/3/free-slots?serviceId=1&petSize=medium&date=2030-05-10")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &getAvailableSlots.Request{
		MasterID:  3,
		ServiceID: 1,
		PetSize:   domain.PetSizeMedium,
		Date:      time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC),
	}, uc.got)
	assert.JSONEq(t, `{
		"date": "2030-05-10", "masterId": 3, "serviceId": 1, "petSize": "medium",
		"durationMinutes": 120, "basePrice": 2900,
		"slots": [{"startTime": "09:00", "endTime": "11:00"}, {"startTime": "13:30", "endTime": "15:30"}]
	}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"bad master", "/api/v1/masters/x/free-slots?serviceId=1&petSize=medium&date=2030-05-10", nil, http.StatusBadRequest, msgInvalidMasterID},
		{"missing params", "/api/v1/masters/1/free-slots?serviceId=1", nil, http.StatusBadRequest, msgMissingParams},
		{"bad service", "/api/v1/masters/1/free-slots?serviceId=a&petSize=medium&date=2030-05-10", nil, http.StatusBadRequest, msgInvalidServiceID},
		{"bad size", "/api/v1/masters/1/free-slots?serviceId=1&petSize=huge&date=2030-05-10", nil, http.StatusBadRequest, msgInvalidSize},
		{"bad date", "/api/v1/masters/1/free-slots?serviceId=1&petSize=medium&date=10-05-2030", nil, http.StatusBadRequest, msgInvalidDate},
		{"inactive master", "/api/v1/masters/1/free-slots?serviceId=1&petSize=medium&date=2030-05-10", catalog.ErrMasterInactive, http.StatusBadRequest, "мастер не работает"},
		{"internal", "/api/v1/masters/1/free-slots?serviceId=1&petSize=medium&date=2030-05-10", getAvailableSlots.ErrInternal, http.StatusInternalServerError, "внутренняя ошибка сервера"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.url)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}
}
