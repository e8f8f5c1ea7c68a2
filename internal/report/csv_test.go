package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Kelvin/internal/calc/plant"
	"Kelvin/internal/units"
)

func sampleSummary() plant.Summary {
	return plant.Summary{
		Units:                     units.SI,
		CoolingCapacity:           100,
		PowerInputKW:              60,
		COP:                       5,
		EER:                       17.06,
		KWPerTon:                  0.7,
		PumpHydraulicPowerKW:      5.886,
		PumpEfficiencyPercent:     98.1,
		TowerRange:                5,
		TowerApproach:             2,
		TowerEffectivenessPercent: 71.43,
		IPLVKWPerTon:              0.7,
		DeltaTC:                   6,
		FlowRateM3S:               0.04,
	}
}

func TestWriteCSVHeaderOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleSummary()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	want := []string{
		"Cooling Capacity",
		"Power Input",
		"COP",
		"EER",
		"kW/Ton",
		"Pump Efficiency (%)",
		"Tower Range",
		"Tower Approach",
		"Tower Effectiveness (%)",
		"IPLV/NPLV (kW/Ton)",
		"Chilled Water ΔT (°C)",
		"Flow Rate (m³/s)",
	}
	assert.Equal(t, want, records[0])
}

func TestWriteCSVValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleSummary()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Shortest round-trip formatting: no trailing zeros, no padding.
	want := []string{"100", "60", "5", "17.06", "0.7", "98.1", "5", "2", "71.43", "0.7", "6", "0.04"}
	assert.Equal(t, want, records[1])
}
