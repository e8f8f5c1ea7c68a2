package tower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Kelvin/internal/calc"
)

func TestCalculate(t *testing.T) {
	// 35 in / 30 out against 28 wet bulb: range 5, approach 2,
	// effectiveness 5/7 = 71.43%.
	res, err := Calculate(Input{CWInletTemp: 35, CWOutletTemp: 30, WetBulbTemp: 28})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, res.Range, 1e-12)
	assert.InDelta(t, 2.0, res.Approach, 1e-12)
	assert.InDelta(t, 5.0/7.0*100, res.EffectivenessPercent, 1e-9)
}

func TestCalculateNegativeRangeAllowed(t *testing.T) {
	// Outlet hotter than inlet is physically odd but not rejected.
	res, err := Calculate(Input{CWInletTemp: 30, CWOutletTemp: 32, WetBulbTemp: 28})
	require.NoError(t, err)

	assert.InDelta(t, -2.0, res.Range, 1e-12)
	assert.InDelta(t, 4.0, res.Approach, 1e-12)
	assert.InDelta(t, -2.0/2.0*100, res.EffectivenessPercent, 1e-9)
}

func TestCalculateZeroDenominator(t *testing.T) {
	// Inlet equal to wet bulb makes range + approach vanish.
	res, err := Calculate(Input{CWInletTemp: 30, CWOutletTemp: 28, WetBulbTemp: 30})
	require.ErrorIs(t, err, calc.ErrDivisionByZero)
	assert.Equal(t, Result{}, res)
}
