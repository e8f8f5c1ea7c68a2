package tower

import (
	"fmt"

	"Kelvin/internal/calc"
)

// Input temperatures share whatever scale the plant logs in; range and
// approach are differences, so no unit conversion applies.
type Input struct {
	CWInletTemp  float64 `json:"cw_inlet_temp"`
	CWOutletTemp float64 `json:"cw_outlet_temp"`
	WetBulbTemp  float64 `json:"wet_bulb_temp"`
}

type Result struct {
	Range                float64 `json:"range_deg"`
	Approach             float64 `json:"approach_deg"`
	EffectivenessPercent float64 `json:"effectiveness_percent"`
	Notes                string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	rng := in.CWInletTemp - in.CWOutletTemp
	approach := in.CWOutletTemp - in.WetBulbTemp
	// A negative range (outlet above inlet) is a reading worth surfacing,
	// not an input error; only the zero denominator is rejected.
	if rng+approach == 0 {
		return Result{}, fmt.Errorf("tower: %w: range + approach is zero", calc.ErrDivisionByZero)
	}
	effectiveness := rng / (rng + approach) * 100

	return Result{
		Range:                rng,
		Approach:             approach,
		EffectivenessPercent: effectiveness,
		Notes:                "Effectiveness = range / (range + approach).",
	}, nil
}
