package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"planned", "done", "cancelled"} {
		status, err := ParseOrderStatus(s)
		require.NoError(t, err)
		assert.Equal(t, OrderStatus(s), status)
	}

	for _, s := range []string{"", "Planned", "Отменена", "canceled", " done"} {
		_, err := ParseOrderStatus(s)
		assert.ErrorIs(t, err, ErrValidation, s)
		assert.ErrorIs(t, err, ErrUnknownStatus, s)
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		wantErr error
	}{
		{OrderStatusPlanned, OrderStatusDone, nil},
		{OrderStatusPlanned, OrderStatusCancelled, nil},
		{OrderStatusPlanned, OrderStatusPlanned, nil},
		{OrderStatusDone, OrderStatusDone, nil},
		{OrderStatusCancelled, OrderStatusCancelled, nil},
		{OrderStatusCancelled, OrderStatusPlanned, nil},
		{OrderStatusCancelled, OrderStatusDone, nil},
		{OrderStatusDone, OrderStatusPlanned, nil},
		{OrderStatusDone, OrderStatusCancelled, ErrInvalidTransition},
		{OrderStatusPlanned, OrderStatus("archived"), ErrValidation},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := tt.from.CanTransitionTo(tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrder_Overlaps(t *testing.T) {
	order := &Order{
		StartTime: types.MustTimeString("10:00"),
		EndTime:   types.MustTimeString("11:30"),
		Status:    OrderStatusPlanned,
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"inside", "10:30", "11:00", true},
		{"covers", "09:00", "12:00", true},
		{"overlaps start", "09:30", "10:01", true},
		{"overlaps end", "11:29", "12:00", true},
		{"touches before", "09:00", "10:00", false},
		{"touches after", "11:30", "13:00", false},
		{"disjoint", "15:00", "16:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := order.Overlaps(types.MustTimeString(tt.start), types.MustTimeString(tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewError_MultipleKinds(t *testing.T) {
	err := NewError("master not found", ErrNotFound, ErrValidation)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "master not found", err.Error())
}

func TestNormalizeComment(t *testing.T) {
	assert.Nil(t, NormalizeComment(nil))
	empty := "   "
	assert.Nil(t, NormalizeComment(&empty))
	text := "  агрессивный  "
	assert.Equal(t, "агрессивный", *NormalizeComment(&text))
}
