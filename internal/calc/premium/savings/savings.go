package savings

import (
	"fmt"

	"Kelvin/internal/calc/chiller"
	"Kelvin/internal/units"
)

type Input struct {
	Units           units.System `json:"units"`
	CoolingCapacity float64      `json:"cooling_capacity"`
	PowerInputKW    float64      `json:"power_input_kw"`
	TargetKWPerTon  float64      `json:"target_kw_per_ton"`
	RunHoursPerYear float64      `json:"run_hours_per_year"`
	TariffPerKWh    float64      `json:"tariff_per_kwh"`
}

type Result struct {
	CurrentKWPerTon       float64 `json:"current_kw_per_ton"`
	TargetKWPerTon        float64 `json:"target_kw_per_ton"`
	Tons                  float64 `json:"tons"`
	DemandSavingKW        float64 `json:"demand_saving_kw"`
	AnnualEnergySavingKWh float64 `json:"annual_energy_saving_kwh"`
	AnnualCostSaving      float64 `json:"annual_cost_saving"`
	Notes                 string  `json:"notes"`
}

// Estimate prices the gap between the measured kW/Ton and a target rating,
// held at constant load over the run hours. A plant already at or below the
// target saves nothing.
func Estimate(in Input) (Result, error) {
	if in.TargetKWPerTon <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.RunHoursPerYear <= 0 {
		in.RunHoursPerYear = 6000
	}
	if in.TariffPerKWh <= 0 {
		in.TariffPerKWh = 0.12
	}

	sys, err := units.Normalize(in.Units)
	if err != nil {
		return Result{}, err
	}
	cur, err := chiller.Calculate(chiller.Input{
		Units:           sys,
		CoolingCapacity: in.CoolingCapacity,
		PowerInputKW:    in.PowerInputKW,
	})
	if err != nil {
		return Result{}, err
	}

	tons := in.CoolingCapacity
	if sys == units.SI {
		tons = in.CoolingCapacity / 3.5
	}
	saving := (cur.KWPerTon - in.TargetKWPerTon) * tons
	if saving < 0 {
		saving = 0
	}
	kwh := saving * in.RunHoursPerYear

	return Result{
		CurrentKWPerTon:       cur.KWPerTon,
		TargetKWPerTon:        in.TargetKWPerTon,
		Tons:                  tons,
		DemandSavingKW:        saving,
		AnnualEnergySavingKWh: kwh,
		AnnualCostSaving:      kwh * in.TariffPerKWh,
		Notes:                 "Savings from meeting the target kW/Ton at constant load.",
	}, nil
}
