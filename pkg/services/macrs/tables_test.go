package macrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boca-banker/boca-banker/pkg/models/domain"
)

func TestTable_SumsToOne(t *testing.T) {
	periods := []domain.RecoveryPeriod{
		domain.PeriodFiveYear,
		domain.PeriodSevenYear,
		domain.PeriodFifteenYear,
		domain.PeriodResidentialBldg,
		domain.PeriodNonResidentBldg,
	}
	for _, period := range periods {
		table, err := Table(period)
		require.NoError(t, err)

		sum := 0.0
		for _, pct := range table {
			assert.GreaterOrEqual(t, pct, 0.0)
			assert.LessOrEqual(t, pct, 1.0)
			sum += pct
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "table for %v must sum to 100%%", period)
	}
}

func TestScheduleLength(t *testing.T) {
	tests := []struct {
		period   domain.RecoveryPeriod
		expected int
	}{
		{domain.PeriodFiveYear, 6},
		{domain.PeriodSevenYear, 8},
		{domain.PeriodFifteenYear, 16},
		{domain.PeriodResidentialBldg, 28},
		{domain.PeriodNonResidentBldg, 40},
	}
	for _, tt := range tests {
		length, err := ScheduleLength(tt.period)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, length, "period %v", tt.period)
	}
}

func TestPercentageFor(t *testing.T) {
	t.Run("five year first year is 20%", func(t *testing.T) {
		pct, err := PercentageFor(domain.PeriodFiveYear, 1)
		require.NoError(t, err)
		assert.InDelta(t, 0.20, pct, 1e-9)
	})

	t.Run("five year table boundary years", func(t *testing.T) {
		first, err := PercentageFor(domain.PeriodFiveYear, 1)
		require.NoError(t, err)
		last, err := PercentageFor(domain.PeriodFiveYear, 6)
		require.NoError(t, err)
		assert.InDelta(t, first, 0.20, 1e-9)
		assert.InDelta(t, last, 0.0576, 1e-9)
	})

	t.Run("straight line first year is half a full year", func(t *testing.T) {
		first, err := PercentageFor(domain.PeriodNonResidentBldg, 1)
		require.NoError(t, err)
		full, err := PercentageFor(domain.PeriodNonResidentBldg, 2)
		require.NoError(t, err)
		assert.InDelta(t, full/2, first, 1e-9)
		assert.InDelta(t, 1.0/39, full, 1e-9)
	})

	t.Run("years past the schedule return zero", func(t *testing.T) {
		pct, err := PercentageFor(domain.PeriodFiveYear, 7)
		require.NoError(t, err)
		assert.Zero(t, pct)
	})

	t.Run("unsupported period", func(t *testing.T) {
		_, err := PercentageFor(domain.RecoveryPeriod(10), 1)
		assert.ErrorIs(t, err, ErrUnsupportedRecoveryPeriod)
	})

	t.Run("year before one", func(t *testing.T) {
		_, err := PercentageFor(domain.PeriodFiveYear, 0)
		assert.Error(t, err)
	})
}
