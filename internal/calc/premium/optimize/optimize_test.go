package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeltaTDefaultSweep(t *testing.T) {
	res, err := DeltaT(DeltaTInput{CapacityKW: 1000})
	require.NoError(t, err)
	require.Len(t, res.Points, 13) // 4..16 step 1

	assert.InDelta(t, 4, res.Points[0].DeltaTC, 1e-12)
	assert.InDelta(t, 0.06, res.Points[0].FlowRateM3S, 1e-12)
	assert.InDelta(t, 6, res.Points[2].DeltaTC, 1e-12)
	assert.InDelta(t, 0.040, res.Points[2].FlowRateM3S, 1e-12)
	assert.InDelta(t, 16, res.Points[12].DeltaTC, 1e-12)
	assert.InDelta(t, 0.015, res.Points[12].FlowRateM3S, 1e-12)

	// Wider differential always means less water moved.
	for i := 1; i < len(res.Points); i++ {
		assert.Less(t, res.Points[i].FlowRateM3S, res.Points[i-1].FlowRateM3S)
	}
}

func TestDeltaTSinglePoint(t *testing.T) {
	res, err := DeltaT(DeltaTInput{CapacityKW: 3500, DeltaTMinC: 4, DeltaTMaxC: 4})
	require.NoError(t, err)
	require.Len(t, res.Points, 1)
	assert.InDelta(t, 0.210, res.Points[0].FlowRateM3S, 1e-12)
}

func TestDeltaTRejectsBadBounds(t *testing.T) {
	_, err := DeltaT(DeltaTInput{CapacityKW: 1000, DeltaTMinC: 10, DeltaTMaxC: 5})
	require.Error(t, err)

	_, err = DeltaT(DeltaTInput{CapacityKW: 0})
	require.Error(t, err)
}
