package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"Kelvin/internal/calc/plant"
)

// Columns is the export contract: one header row, one data row, this order.
var Columns = []string{
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

func row(s plant.Summary) []float64 {
	return []float64{
		s.CoolingCapacity,
		s.PowerInputKW,
		s.COP,
		s.EER,
		s.KWPerTon,
		s.PumpEfficiencyPercent,
		s.TowerRange,
		s.TowerApproach,
		s.TowerEffectivenessPercent,
		s.IPLVKWPerTon,
		s.DeltaTC,
		s.FlowRateM3S,
	}
}

// WriteCSV emits the summary as a two-line CSV. Values go out unrounded;
// IPLV and flow rate were already rounded by their calculators.
func WriteCSV(w io.Writer, s plant.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	values := row(s)
	record := make([]string, len(values))
	for i, v := range values {
		record[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	if err := cw.Write(record); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
