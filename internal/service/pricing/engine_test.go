package pricing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/ptr"
)

func TestEngine_Calculate(t *testing.T) {
	tariff := &domain.ServiceTariff{ID: 1, ServiceID: 1, Size: domain.PetSizeDecorative, Price: 2000, DurationMinutes: 90}
	extras := []*domain.ExtraService{
		{ID: 1, Name: "Окрашивание шерсти", Price: 500},
		{ID: 2, Name: "Выбривание узора", Price: 200},
	}

	tests := []struct {
		name   string
		tariff *domain.ServiceTariff
		factor int
		extras []*domain.ExtraService
		manual *int64
		want   Quote
	}{
		{
			name:   "age factor only",
			tariff: tariff,
			factor: 90,
			want:   Quote{Base: 2000, AgeFactor: 90, AfterAge: 1800, Computed: 1800, Final: 1800},
		},
		{
			name:   "age factor and extras",
			tariff: tariff,
			factor: 90,
			extras: extras,
			want:   Quote{Base: 2000, AgeFactor: 90, AfterAge: 1800, ExtrasTotal: 700, Computed: 2500, Final: 2500},
		},
		{
			name:   "manual override wins verbatim",
			tariff: tariff,
			factor: 90,
			extras: extras,
			manual: ptr.Ptr[int64](1234),
			want: Quote{
				Base: 2000, AgeFactor: 90, AfterAge: 1800, ExtrasTotal: 700,
				Computed: 2500, Final: 1234, Overridden: true,
			},
		},
		{
			name:   "zero override is ignored",
			tariff: tariff,
			factor: 100,
			manual: ptr.Ptr[int64](0),
			want:   Quote{Base: 2000, AgeFactor: 100, AfterAge: 2000, Computed: 2000, Final: 2000},
		},
		{
			name:   "truncates instead of rounding",
			tariff: &domain.ServiceTariff{Price: 1299},
			factor: 110,
			want:   Quote{Base: 1299, AgeFactor: 110, AfterAge: 1428, Computed: 1428, Final: 1428},
		},
		{
			name:   "duplicate extras count once",
			tariff: tariff,
			factor: 100,
			extras: []*domain.ExtraService{extras[0], extras[0], nil},
			want:   Quote{Base: 2000, AgeFactor: 100, AfterAge: 2000, ExtrasTotal: 500, Computed: 2500, Final: 2500},
		},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Calculate(tt.tariff, tt.factor, tt.extras, tt.manual)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Calculate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEngine_Calculate_Errors(t *testing.T) {
	engine := NewEngine()
	tariff := &domain.ServiceTariff{Price: 2000}

	_, err := engine.Calculate(tariff, 100, nil, ptr.Ptr[int64](-1))
	assert.ErrorIs(t, err, ErrNegativePrice)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = engine.Calculate(tariff, 0, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidAgeFactor)

	_, err = engine.Calculate(nil, 100, nil, nil)
	assert.ErrorIs(t, err, ErrTariffRequired)
}

func TestEngine_ComputePrice(t *testing.T) {
	price, err := NewEngine().ComputePrice(
		&domain.ServiceTariff{Price: 2000},
		90,
		[]*domain.ExtraService{{ID: 1, Price: 500}, {ID: 2, Price: 200}},
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), price)
}
