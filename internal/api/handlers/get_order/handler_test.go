package get_order

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
	"github.com/m04kA/SMC-GroomingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

func serve(orders OrderReader, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/orders/{orderId}", NewHandler(orders, logger.NewNop()).Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle(t *testing.T) {
	store := memory.NewStore()
	store.SeedDefaults()
	ctx := context.Background()

	client, err := store.Clients().CreateClient(ctx, &domain.Client{FullName: "Иванова Мария"})
	require.NoError(t, err)
	pet, err := store.Clients().CreatePet(ctx, &domain.Pet{
		ClientID: client.ID, Name: "Буся", Species: domain.SpeciesDog, AgeGroupID: 2, Size: domain.PetSizeMedium,
	})
	require.NoError(t, err)
	order, err := store.Orders().Create(ctx, &domain.Order{
		ClientID: client.ID, PetID: pet.ID, MasterID: 1, ServiceID: 1, Price: 2900,
		Date:      time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00", EndTime: "12:00",
		Status:          domain.OrderStatusPlanned,
		ExtraServiceIDs: []int64{3},
	})
	require.NoError(t, err)

	rec := serve(store.Orders(), "/api/v1/orders/1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"id": 1, "date": "2030-05-10", "startTime": "10:00", "endTime": "12:00",
		"price": 2900, "status": "planned",
		"clientId": 1, "clientName": "Иванова Мария", "petId": 1, "petName": "Буся",
		"serviceId": 1, "serviceName": "Комплексный уход", "masterId": 1, "masterName": "Анна",
		"extraServiceIds": [3]
	}`, rec.Body.String())
	assert.Equal(t, int64(1), order.ID)

	rec = serve(store.Orders(), "/api/v1/orders/42")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(store.Orders(), "/api/v1/orders/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
