package savings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Kelvin/internal/calc"
	"Kelvin/internal/units"
)

func TestEstimateSI(t *testing.T) {
	res, err := Estimate(Input{
		Units:           units.SI,
		CoolingCapacity: 350,
		PowerInputKW:    80,
		TargetKWPerTon:  0.7,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.8, res.CurrentKWPerTon, 1e-9)
	assert.InDelta(t, 100, res.Tons, 1e-9)
	assert.InDelta(t, 10, res.DemandSavingKW, 1e-9)
	assert.InDelta(t, 60000, res.AnnualEnergySavingKWh, 1e-6) // default 6000 h
	assert.InDelta(t, 7200, res.AnnualCostSaving, 1e-6)       // default 0.12/kWh
}

func TestEstimateIP(t *testing.T) {
	res, err := Estimate(Input{
		Units:           units.IP,
		CoolingCapacity: 100, // tons
		PowerInputKW:    60,
		TargetKWPerTon:  0.55,
		RunHoursPerYear: 4000,
		TariffPerKWh:    0.1,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.6, res.CurrentKWPerTon, 1e-9)
	assert.InDelta(t, 100, res.Tons, 1e-9)
	assert.InDelta(t, 5, res.DemandSavingKW, 1e-9)
	assert.InDelta(t, 20000, res.AnnualEnergySavingKWh, 1e-6)
	assert.InDelta(t, 2000, res.AnnualCostSaving, 1e-6)
}

func TestEstimateAlreadyBelowTarget(t *testing.T) {
	res, err := Estimate(Input{
		Units:           units.IP,
		CoolingCapacity: 100,
		PowerInputKW:    60, // 0.6 kW/Ton, better than target
		TargetKWPerTon:  0.7,
	})
	require.NoError(t, err)

	assert.Zero(t, res.DemandSavingKW)
	assert.Zero(t, res.AnnualCostSaving)
}

func TestEstimateErrors(t *testing.T) {
	_, err := Estimate(Input{Units: units.SI, CoolingCapacity: 350, PowerInputKW: 80})
	require.Error(t, err, "target is required")

	_, err = Estimate(Input{Units: units.SI, CoolingCapacity: 350, PowerInputKW: 0, TargetKWPerTon: 0.7})
	require.ErrorIs(t, err, calc.ErrDivisionByZero)
}
