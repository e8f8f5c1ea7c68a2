package chiller

import (
	"fmt"

	"Kelvin/internal/calc"
	"Kelvin/internal/units"
)

type Input struct {
	Units units.System `json:"units"` // SI or IP
	// RT under I-P, kW under SI.
	CoolingCapacity float64 `json:"cooling_capacity"`
	PowerInputKW    float64 `json:"power_input_kw"`
}

type Result struct {
	COP      float64 `json:"cop"`
	EER      float64 `json:"eer"`
	KWPerTon float64 `json:"kw_per_ton"`
	Notes    string  `json:"notes"`
}

// btuPerWh converts COP to EER (Btu/h per W) and back.
const btuPerWh = 3.412

func Calculate(in Input) (Result, error) {
	sys, err := units.Normalize(in.Units)
	if err != nil {
		return Result{}, err
	}

	if sys == units.IP {
		if in.CoolingCapacity == 0 {
			return Result{}, fmt.Errorf("chiller: %w: cooling capacity is zero", calc.ErrDivisionByZero)
		}
		if in.PowerInputKW == 0 {
			return Result{}, fmt.Errorf("chiller: %w: power input is zero", calc.ErrDivisionByZero)
		}
		kwPerTon := in.PowerInputKW / in.CoolingCapacity
		// EER = Btu/h of cooling per watt of input; 1 RT = 12000 Btu/h.
		eer := (in.CoolingCapacity * 12000) / (in.PowerInputKW * 1000)
		cop := eer / btuPerWh
		return Result{
			COP:      cop,
			EER:      eer,
			KWPerTon: kwPerTon,
			Notes:    "I-P: capacity in RT, 12000 Btu/h per ton.",
		}, nil
	}

	if in.PowerInputKW == 0 {
		return Result{}, fmt.Errorf("chiller: %w: power input is zero", calc.ErrDivisionByZero)
	}
	cop := in.CoolingCapacity / in.PowerInputKW
	eer := cop * btuPerWh
	if cop == 0 {
		return Result{}, fmt.Errorf("chiller: %w: cop is zero", calc.ErrDivisionByZero)
	}
	// 3.5 kW per ton nominal, so kW/ton = 3.5 / COP.
	kwPerTon := 3.5 / cop
	return Result{
		COP:      cop,
		EER:      eer,
		KWPerTon: kwPerTon,
		Notes:    "SI: capacity in kW.",
	}, nil
}
