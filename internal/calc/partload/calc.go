package partload

import (
	"fmt"

	"Kelvin/internal/calc"
)

// Input carries kW/ton readings at the four standard load points. The
// weighting is positional, so the fields must hold the 100/75/50/25 order.
type Input struct {
	KWPerTon100 float64 `json:"kw_per_ton_100"`
	KWPerTon75  float64 `json:"kw_per_ton_75"`
	KWPerTon50  float64 `json:"kw_per_ton_50"`
	KWPerTon25  float64 `json:"kw_per_ton_25"`
}

type Result struct {
	IPLVKWPerTon float64 `json:"iplv_kw_per_ton"`
	Notes        string  `json:"notes"`
}

// AHRI 550/590 weighting for the 100/75/50/25% load points.
var weights = [4]float64{0.01, 0.42, 0.45, 0.12}

// Calculate returns the weighted harmonic mean of the four readings,
// rounded to 3 decimals.
func Calculate(in Input) (Result, error) {
	values := [4]float64{in.KWPerTon100, in.KWPerTon75, in.KWPerTon50, in.KWPerTon25}

	sum := 0.0
	for i, v := range values {
		if v == 0 {
			return Result{}, fmt.Errorf("partload: %w: kW/ton reading %d is zero", calc.ErrDivisionByZero, i+1)
		}
		sum += weights[i] / v
	}
	if sum == 0 {
		return Result{}, fmt.Errorf("partload: %w: weighted sum is zero", calc.ErrDivisionByZero)
	}

	return Result{
		IPLVKWPerTon: calc.Round3(1 / sum),
		Notes:        "IPLV/NPLV per AHRI 550/590 weighting 0.01/0.42/0.45/0.12.",
	}, nil
}
