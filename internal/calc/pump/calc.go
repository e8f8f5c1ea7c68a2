package pump

import (
	"fmt"

	"Kelvin/internal/calc"
	"Kelvin/internal/units"
)

type Input struct {
	Units units.System `json:"units"`
	// m³/s under SI, ft³/s under I-P.
	Flow float64 `json:"flow"`
	// m under SI, ft under I-P.
	Head        float64 `json:"head"`
	PumpPowerKW float64 `json:"pump_power_kw"`
}

type Result struct {
	HydraulicPowerKW  float64 `json:"hydraulic_power_kw"`
	EfficiencyPercent float64 `json:"efficiency_percent"`
	Notes             string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	sys, err := units.Normalize(in.Units)
	if err != nil {
		return Result{}, err
	}
	if in.PumpPowerKW == 0 {
		return Result{}, fmt.Errorf("pump: %w: pump power is zero", calc.ErrDivisionByZero)
	}

	// I-P density is 62.4 lb/ft³ times the sheets' 1.3558 conversion
	// factor; the hydraulic result stays in kW.
	density := 1000.0
	g := 9.81
	if sys == units.IP {
		density = 62.4 * 1.3558
		g = 32.174
	}

	hydraulic := in.Flow * in.Head * density * g / 1000
	efficiency := (hydraulic / in.PumpPowerKW) * 100

	return Result{
		HydraulicPowerKW:  hydraulic,
		EfficiencyPercent: efficiency,
		Notes:             "Hydraulic power = flow x head x density x g / 1000.",
	}, nil
}
