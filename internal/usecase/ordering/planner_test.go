package ordering_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-GroomingService/internal/service/catalog"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering/orderingtest"
	"github.com/m04kA/SMC-GroomingService/pkg/ptr"
	"github.com/m04kA/SMC-GroomingService/pkg/txmanager"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

var moscow = orderingtest.Location

func newPlanner(t *testing.T, now time.Time) (*ordering.Planner, *memory.Store) {
	t.Helper()
	env := orderingtest.NewEnv()
	return env.Planner.WithTimeProvider(&ordering.FixedTimeProvider{At: now}), env.Store
}

func TestPlanner_ResolveSlot(t *testing.T) {
	now := time.Date(2030, 5, 1, 12, 0, 0, 0, moscow)
	date := time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     ordering.SlotRequest
		wantEnd string
		wantErr error
	}{
		{
			name:    "decorative complex care takes 90 minutes",
			req:     ordering.SlotRequest{MasterID: 1, ServiceID: 1, PetSize: domain.PetSizeDecorative, Date: date, StartTime: "10:00"},
			wantEnd: "11:30",
		},
		{
			name:    "ends exactly at close",
			req:     ordering.SlotRequest{MasterID: 1, ServiceID: 1, PetSize: domain.PetSizeDecorative, Date: date, StartTime: "18:30"},
			wantEnd: "20:00",
		},
		{
			name:    "starts exactly at open",
			req:     ordering.SlotRequest{MasterID: 1, ServiceID: 2, PetSize: domain.PetSizeDecorative, Date: date, StartTime: "09:00"},
			wantEnd: "10:00",
		},
		{
			name:    "before open",
			req:     ordering.SlotRequest{MasterID: 1, ServiceID: 1, PetSize: domain.PetSizeDecorative, Date: date, StartTime: "08:30"},
			wantErr: ordering.ErrOutsideBusinessHours,
		},
		{
			name:    "ends after close",
			req:     ordering.SlotRequest{MasterID: 1, ServiceID: 1, PetSize: domain.PetSizeDecorative, Date: date, StartTime: "19:00"},
			wantErr: ordering.ErrOutsideBusinessHours,
		},
		{
			name:    "crosses midnight",
			req:     ordering.SlotRequest{MasterID: 1, ServiceID: 1, PetSize: domain.PetSizeDecorative, Date: date, StartTime: "23:30"},
			wantErr: ordering.ErrOutsideBusinessHours,
		},
		{
			name:    "in the past",
			req:     ordering.SlotRequest{MasterID: 1, ServiceID: 1, PetSize: domain.PetSizeDecorative, Date: time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC), StartTime: "11:00"},
			wantErr: ordering.ErrInPast,
		},
		{
			name:    "unknown master",
			req:     ordering.SlotRequest{MasterID: 404, ServiceID: 1, PetSize: domain.PetSizeDecorative, Date: date, StartTime: "10:00"},
			wantErr: catalog.ErrMasterNotFound,
		},
		{
			name:    "unknown service",
			req:     ordering.SlotRequest{MasterID: 1, ServiceID: 404, PetSize: domain.PetSizeDecorative, Date: date, StartTime: "10:00"},
			wantErr: catalog.ErrServiceNotFound,
		},
		{
			name:    "no tariff for size",
			req:     ordering.SlotRequest{MasterID: 1, ServiceID: 5, PetSize: domain.PetSizeDecorative, Date: date, StartTime: "10:00"},
			wantErr: catalog.ErrTariffNotFound,
		},
		{
			name:    "malformed start",
			req:     ordering.SlotRequest{MasterID: 1, ServiceID: 1, PetSize: domain.PetSizeDecorative, Date: date, StartTime: "25:00"},
			wantErr: ordering.ErrInvalidTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner, _ := newPlanner(t, now)

			slot, err := planner.ResolveSlot(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, types.TimeString(tt.wantEnd), slot.EndTime)
			assert.Equal(t, tt.req.StartTime, slot.StartTime)
			assert.Equal(t, tt.req.MasterID, slot.Master.ID)
		})
	}
}

func TestPlanner_ResolveSlot_InactiveMaster(t *testing.T) {
	planner, store := newPlanner(t, time.Date(2030, 5, 1, 12, 0, 0, 0, moscow))
	require.NoError(t, store.Catalog().SetMasterActive(2, false))

	_, err := planner.ResolveSlot(context.Background(), ordering.SlotRequest{
		MasterID:  2,
		ServiceID: 1,
		PetSize:   domain.PetSizeMedium,
		Date:      time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	})
	assert.ErrorIs(t, err, catalog.ErrMasterInactive)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPlanner_ValidateWindow_UsesBusinessTimeZone(t *testing.T) {
	// 06:30 UTC = 09:30 MSK
	now := time.Date(2030, 5, 10, 6, 30, 0, 0, time.UTC)
	planner, _ := newPlanner(t, now)
	date := time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)

	err := planner.ValidateWindow(date, "09:00", "10:00")
	assert.ErrorIs(t, err, ordering.ErrInPast)

	err = planner.ValidateWindow(date, "10:00", "11:00")
	assert.NoError(t, err)
}

func TestPlanner_EnsureAvailable(t *testing.T) {
	ctx := context.Background()
	planner, store := newPlanner(t, time.Date(2030, 5, 1, 12, 0, 0, 0, moscow))
	date := time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)

	existing, err := store.Orders().Create(ctx, &domain.Order{
		ClientID: 1, PetID: 1, MasterID: 1, ServiceID: 1, Price: 2000,
		Date: date, StartTime: "10:00", EndTime: "11:30",
	})
	require.NoError(t, err)

	slot, err := planner.ResolveSlot(ctx, ordering.SlotRequest{
		MasterID: 1, ServiceID: 2, PetSize: domain.PetSizeDecorative, Date: date, StartTime: "11:00",
	})
	require.NoError(t, err)

	err = planner.EnsureAvailable(ctx, slot, nil)
	assert.ErrorIs(t, err, ordering.ErrSlotOccupied)
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = planner.EnsureAvailable(ctx, slot, ptr.Ptr(existing.ID))
	assert.NoError(t, err)

	backToBack, err := planner.ResolveSlot(ctx, ordering.SlotRequest{
		MasterID: 1, ServiceID: 2, PetSize: domain.PetSizeDecorative, Date: date, StartTime: "11:30",
	})
	require.NoError(t, err)
	assert.NoError(t, planner.EnsureAvailable(ctx, backToBack, nil))
}

func TestPlanner_CalculatePrice(t *testing.T) {
	ctx := context.Background()
	planner, store := newPlanner(t, time.Date(2030, 5, 1, 12, 0, 0, 0, moscow))

	tariff, err := store.Catalog().GetTariff(ctx, 1, domain.PetSizeDecorative)
	require.NoError(t, err)

	price, err := planner.CalculatePrice(ctx, ordering.PriceRequest{
		Tariff:          tariff,
		AgeGroupID:      1,
		ExtraServiceIDs: []int64{1, 2, 1, 999},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1800), price.Quote.AfterAge)
	assert.Equal(t, int64(2500), price.Quote.Final)
	assert.Equal(t, []int64{1, 2}, price.ExtraIDs())

	overridden, err := planner.CalculatePrice(ctx, ordering.PriceRequest{
		Tariff:          tariff,
		AgeGroupID:      1,
		ExtraServiceIDs: []int64{1, 2},
		ManualPrice:     ptr.Ptr(int64(1234)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1234), overridden.Quote.Final)
	assert.True(t, overridden.Quote.Overridden)
	assert.Equal(t, []int64{1, 2}, overridden.ExtraIDs())

	_, err = planner.CalculatePrice(ctx, ordering.PriceRequest{Tariff: tariff, AgeGroupID: 99})
	assert.ErrorIs(t, err, catalog.ErrAgeGroupNotFound)
}

type recordingLocker struct {
	calls []ordering.SlotKey
}

func (l *recordingLocker) LockSlot(_ context.Context, masterID int64, date time.Time) error {
	l.calls = append(l.calls, ordering.SlotKey{MasterID: masterID, Date: date})
	return nil
}

func TestPlanner_LockSlots_StableOrder(t *testing.T) {
	locker := &recordingLocker{}
	planner := ordering.NewPlanner(nil, nil, nil, locker, time.UTC)

	d1 := time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2030, 5, 11, 0, 0, 0, 0, time.UTC)

	err := planner.LockSlots(context.Background(),
		ordering.SlotKey{MasterID: 2, Date: d1},
		ordering.SlotKey{MasterID: 1, Date: d2},
		ordering.SlotKey{MasterID: 1, Date: d1},
		ordering.SlotKey{MasterID: 2, Date: d1.Add(5 * time.Hour)},
	)
	require.NoError(t, err)

	assert.Equal(t, []ordering.SlotKey{
		{MasterID: 1, Date: d1},
		{MasterID: 1, Date: d2},
		{MasterID: 2, Date: d1},
	}, locker.calls)
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ordering.OutcomeSuccess},
		{ordering.ErrSlotOccupied, ordering.OutcomeConflict},
		{catalog.ErrMasterNotFound, ordering.OutcomeValidation},
		{ordering.ErrInPast, ordering.OutcomeValidation},
		{domain.NewError("gone", domain.ErrNotFound), ordering.OutcomeNotFound},
		{domain.NewError("again", domain.ErrDuplicate), ordering.OutcomeDuplicate},
		{domain.ErrInvalidTransition, ordering.OutcomeInvalidTransition},
		{errors.New("boom"), ordering.OutcomeError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ordering.Outcome(tt.err), "err=%v", tt.err)
	}
}

func TestTxConflict(t *testing.T) {
	assert.NoError(t, ordering.TxConflict(nil))

	err := ordering.TxConflict(txmanager.ErrSerialization)
	assert.ErrorIs(t, err, ordering.ErrSlotOccupied)
	assert.ErrorIs(t, err, domain.ErrConflict)

	plain := errors.New("boom")
	assert.Equal(t, plain, ordering.TxConflict(plain))
}
