package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/service/catalog"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering/orderingtest"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

func newUseCase(env *orderingtest.Env) *UseCase {
	return NewUseCase(env.Catalog, env.Store.Orders(), 30, orderingtest.Location, logger.NewNop()).
		WithTimeProvider(&ordering.FixedTimeProvider{At: orderingtest.Now})
}

func request(date time.Time) *Request {
	return &Request{MasterID: 1, ServiceID: 1, PetSize: domain.PetSizeDecorative, Date: date}
}

func starts(slots []Slot) []string {
	result := make([]string, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.StartTime.String())
	}
	return result
}

func TestGenerateStartTimes(t *testing.T) {
	got, err := generateStartTimes(30, 90)
	require.NoError(t, err)
	require.Len(t, got, 20)
	assert.Equal(t, types.TimeString("09:00"), got[0])
	assert.Equal(t, types.TimeString("18:30"), got[len(got)-1])

	got, err = generateStartTimes(60, 660)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00"}, got)

	got, err = generateStartTimes(30, 700)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExecute_FreeDay(t *testing.T) {
	env := orderingtest.NewEnv()

	resp, err := newUseCase(env).Execute(context.Background(), request(orderingtest.Date))
	require.NoError(t, err)

	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, int64(2000), resp.BasePrice)
	require.Len(t, resp.Slots, 20)
	assert.Equal(t, Slot{StartTime: "09:00", EndTime: "10:30"}, resp.Slots[0])
	assert.Equal(t, Slot{StartTime: "18:30", EndTime: "20:00"}, resp.Slots[19])
}

func TestExecute_SkipsOccupied(t *testing.T) {
	env := orderingtest.NewEnv()
	ctx := context.Background()

	_, err := env.Store.Orders().Create(ctx, &domain.Order{
		ClientID: 1, PetID: 1, MasterID: 1, ServiceID: 1, Price: 2000,
		Date: orderingtest.Date, StartTime: "10:00", EndTime: "11:30",
		Status: domain.OrderStatusPlanned,
	})
	require.NoError(t, err)

	// заказ другого мастера не мешает
	_, err = env.Store.Orders().Create(ctx, &domain.Order{
		ClientID: 1, PetID: 1, MasterID: 2, ServiceID: 1, Price: 2000,
		Date: orderingtest.Date, StartTime: "12:00", EndTime: "13:30",
		Status: domain.OrderStatusPlanned,
	})
	require.NoError(t, err)

	resp, err := newUseCase(env).Execute(ctx, request(orderingtest.Date))
	require.NoError(t, err)

	got := starts(resp.Slots)
	assert.Len(t, got, 15)
	assert.Equal(t, "11:30", got[0])
	assert.NotContains(t, got, "09:00")
	assert.NotContains(t, got, "11:00")
	assert.Contains(t, got, "12:00")
}

func TestExecute_Today(t *testing.T) {
	env := orderingtest.NewEnv()
	today := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)

	resp, err := newUseCase(env).Execute(context.Background(), request(today))
	require.NoError(t, err)

	got := starts(resp.Slots)
	require.Len(t, got, 14)
	assert.Equal(t, "12:00", got[0])
}

func TestExecute_PastDay(t *testing.T) {
	env := orderingtest.NewEnv()
	yesterday := time.Date(2030, 4, 30, 0, 0, 0, 0, time.UTC)

	resp, err := newUseCase(env).Execute(context.Background(), request(yesterday))
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(env *orderingtest.Env)
		mutate  func(r *Request)
		wantErr error
	}{
		{
			name:    "no master",
			mutate:  func(r *Request) { r.MasterID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown size",
			mutate:  func(r *Request) { r.PetSize = "giant" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "no date",
			mutate:  func(r *Request) { r.Date = time.Time{} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "master not found",
			mutate:  func(r *Request) { r.MasterID = 99 },
			wantErr: catalog.ErrMasterNotFound,
		},
		{
			name: "master inactive",
			prepare: func(env *orderingtest.Env) {
				require.NoError(t, env.Store.Catalog().SetMasterActive(1, false))
			},
			wantErr: catalog.ErrMasterInactive,
		},
		{
			name:    "service without tariffs",
			mutate:  func(r *Request) { r.ServiceID = 5 },
			wantErr: catalog.ErrTariffNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := orderingtest.NewEnv()
			if tt.prepare != nil {
				tt.prepare(env)
			}
			req := request(orderingtest.Date)
			if tt.mutate != nil {
				tt.mutate(req)
			}

			_, err := newUseCase(env).Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
