package optimize

import (
	"fmt"

	"Kelvin/internal/calc/flow"
)

type DeltaTInput struct {
	CapacityKW float64 `json:"capacity_kw"`
	DeltaTMinC float64 `json:"delta_t_min_c"`
	DeltaTMaxC float64 `json:"delta_t_max_c"`
	StepC      float64 `json:"step_c"`
}

type DeltaTPoint struct {
	DeltaTC     float64 `json:"delta_t_c"`
	FlowRateM3S float64 `json:"flow_rate_m3_s"`
}

type DeltaTResult struct {
	Points []DeltaTPoint `json:"points"`
	Notes  string        `json:"notes"`
}

// DeltaT sweeps the design temperature differential and sizes the chilled
// water flow at each step. Bounds default to the 4..16 degC design band.
func DeltaT(in DeltaTInput) (DeltaTResult, error) {
	if in.CapacityKW <= 0 {
		return DeltaTResult{}, fmt.Errorf("invalid input")
	}
	if in.DeltaTMinC <= 0 {
		in.DeltaTMinC = 4
	}
	if in.DeltaTMaxC <= 0 {
		in.DeltaTMaxC = 16
	}
	if in.StepC <= 0 {
		in.StepC = 1
	}
	if in.DeltaTMaxC < in.DeltaTMinC {
		return DeltaTResult{}, fmt.Errorf("invalid input")
	}

	var points []DeltaTPoint
	for dt := in.DeltaTMinC; dt <= in.DeltaTMaxC+1e-9; dt += in.StepC {
		res, err := flow.Calculate(flow.Input{CapacityKW: in.CapacityKW, DeltaTC: dt})
		if err != nil {
			return DeltaTResult{}, err
		}
		points = append(points, DeltaTPoint{DeltaTC: dt, FlowRateM3S: res.FlowRateM3S})
	}
	return DeltaTResult{
		Points: points,
		Notes:  "Chilled water flow sized per Delta-T step (SI water constants).",
	}, nil
}
