package flow

import (
	"fmt"

	"Kelvin/internal/calc"
)

type Input struct {
	CapacityKW float64 `json:"capacity_kw"`
	// °C. The sizing form constrains this to [4,16]; the calculation only
	// guards the zero denominator.
	DeltaTC float64 `json:"delta_t_c"`
}

type Result struct {
	FlowRateM3S float64 `json:"flow_rate_m3_s"`
	Notes       string  `json:"notes"`
}

// Chilled-water properties. SI constants regardless of the selected unit
// system; the output stays m³/s even under I-P. Known limitation, also
// stated in Result.Notes.
const (
	specificHeatKJKgK = 4.187
	densityKgM3       = 997.0
)

func Calculate(in Input) (Result, error) {
	if in.DeltaTC == 0 {
		return Result{}, fmt.Errorf("flow: %w: delta-T is zero", calc.ErrDivisionByZero)
	}
	rate := in.CapacityKW / (specificHeatKJKgK * densityKgM3 * in.DeltaTC)
	return Result{
		FlowRateM3S: calc.Round3(rate),
		Notes:       "SI-only sizing (cp 4.187 kJ/kg.K, rho 997 kg/m3); output is m3/s in every unit system.",
	}, nil
}
