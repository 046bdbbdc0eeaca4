package create_order

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/service/catalog"
	createOrder "github.com/m04kA/SMC-GroomingService/internal/usecase/create_order"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
	"github.com/m04kA/SMC-GroomingService/pkg/ptr"
)

type fakeUseCase struct {
	got    *createOrder.Request
	result *domain.OrderView
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createOrder.Request) (*domain.OrderView, error) {
	f.got = req
	return f.result, f.err
}

const validBody = `{
	"phone": "+79990000001",
	"fullName": "Иванова Мария",
	"pet": {"name": "Буся", "species": "dog", "breedId": 1, "ageGroupId": 1},
	"masterId": 1,
	"serviceId": 1,
	"date": "2030-05-10",
	"startTime": "10:00",
	"extraServiceIds": [1, 2],
	"comment": "боится фена"
}`

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{result: &domain.OrderView{
		ID:              5,
		Date:            time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "11:30",
		Price:           2500,
		Status:          domain.OrderStatusPlanned,
		ClientID:        1,
		ClientName:      "Иванова Мария",
		PetID:           1,
		PetName:         "Буся",
		ServiceID:       1,
		ServiceName:     "Комплексный уход",
		MasterID:        1,
		MasterName:      "Анна",
		Comment:         ptr.Ptr("боится фена"),
		ExtraServiceIDs: []int64{1, 2},
	}}

	rec := serve(uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"id": 5, "date": "2030-05-10", "startTime": "10:00", "endTime": "11:30",
		"price": 2500, "status": "planned",
		"clientId": 1, "clientName": "Иванова Мария", "petId": 1, "petName": "Буся",
		"serviceId": 1, "serviceName": "Комплексный уход", "masterId": 1, "masterName": "Анна",
		"comment": "боится фена", "extraServiceIds": [1, 2]
	}`, rec.Body.String())

	require.NotNil(t, uc.got)
	assert.Equal(t, domain.SpeciesDog, uc.got.Pet.Species)
	assert.Nil(t, uc.got.Pet.Size)
	assert.Equal(t, int64(1), *uc.got.Pet.BreedID)
	assert.Equal(t, "10:00", uc.got.StartTime.String())
	assert.Equal(t, "2030-05-10", uc.got.Date.Format(domain.DateFormat))
}

func TestHandle_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"not json", `{`, msgInvalidRequestBody},
		{"unknown field", `{"foo": 1}`, msgInvalidRequestBody},
		{"bad date", strings.Replace(validBody, "2030-05-10", "10.05.2030", 1), msgInvalidDate},
		{"bad time", strings.Replace(validBody, `"10:00"`, `"10am"`, 1), msgInvalidTime},
		{"bad species", strings.Replace(validBody, `"dog"`, `"parrot"`, 1), msgInvalidPet},
		{"bad size", strings.Replace(validBody, `"ageGroupId": 1`, `"ageGroupId": 1, "size": "huge"`, 1), msgInvalidPet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := serve(uc, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"code":400,"message":%q}`, tt.wantMsg), rec.Body.String())
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"occupied", fmt.Errorf("%w: master=1", ordering.ErrSlotOccupied), http.StatusConflict, "выбранное время у мастера занято"},
		{"duplicate", createOrder.ErrDuplicateOrder, http.StatusConflict, msgDuplicate},
		{"outside hours", ordering.ErrOutsideBusinessHours, http.StatusBadRequest, "заказ выходит за рамки рабочего дня 09:00-20:00"},
		{"master not found", catalog.ErrMasterNotFound, http.StatusBadRequest, "мастер не найден"},
		{"no tariff", catalog.ErrTariffNotFound, http.StatusBadRequest, "нет тарифа для этой услуги и размера питомца"},
		{"generic validation", createOrder.ErrInvalidInput, http.StatusBadRequest, msgInvalidData},
		{"internal", fmt.Errorf("%w: db down", createOrder.ErrInternal), http.StatusInternalServerError, "внутренняя ошибка сервера"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "внутренняя ошибка сервера"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"code":%d,"message":%q}`, tt.wantStatus, tt.wantMsg), rec.Body.String())
		})
	}
}
