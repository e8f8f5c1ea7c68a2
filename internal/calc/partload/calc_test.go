package partload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Kelvin/internal/calc"
)

func TestCalculate(t *testing.T) {
	// 1/(0.01/0.6 + 0.42/0.65 + 0.45/0.72 + 0.12/0.85) = 0.69979...,
	// rounded to 3 decimals.
	res, err := Calculate(Input{
		KWPerTon100: 0.6,
		KWPerTon75:  0.65,
		KWPerTon50:  0.72,
		KWPerTon25:  0.85,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.700, res.IPLVKWPerTon, 1e-12)
}

func TestCalculateUniformReadings(t *testing.T) {
	// Identical readings collapse the harmonic mean back to the reading.
	res, err := Calculate(Input{
		KWPerTon100: 0.8,
		KWPerTon75:  0.8,
		KWPerTon50:  0.8,
		KWPerTon25:  0.8,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, res.IPLVKWPerTon, 1e-12)
}

func TestCalculateWeightsArePositional(t *testing.T) {
	// Swapping the 75% and 50% readings must change the result: the
	// weights bind to positions, not to values.
	a, err := Calculate(Input{KWPerTon100: 0.6, KWPerTon75: 0.65, KWPerTon50: 0.72, KWPerTon25: 0.85})
	require.NoError(t, err)
	b, err := Calculate(Input{KWPerTon100: 0.6, KWPerTon75: 0.72, KWPerTon50: 0.65, KWPerTon25: 0.85})
	require.NoError(t, err)
	assert.NotEqual(t, a.IPLVKWPerTon, b.IPLVKWPerTon)
}

func TestCalculateZeroReading(t *testing.T) {
	inputs := []Input{
		{KWPerTon100: 0, KWPerTon75: 0.65, KWPerTon50: 0.72, KWPerTon25: 0.85},
		{KWPerTon100: 0.6, KWPerTon75: 0, KWPerTon50: 0.72, KWPerTon25: 0.85},
		{KWPerTon100: 0.6, KWPerTon75: 0.65, KWPerTon50: 0, KWPerTon25: 0.85},
		{KWPerTon100: 0.6, KWPerTon75: 0.65, KWPerTon50: 0.72, KWPerTon25: 0},
	}
	for i, in := range inputs {
		res, err := Calculate(in)
		require.ErrorIs(t, err, calc.ErrDivisionByZero, "input %d", i)
		assert.Equal(t, Result{}, res, "input %d", i)
	}
}
