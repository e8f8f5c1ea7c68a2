// Package plant runs one full evaluation pass over a set of operating
// readings: every calculator once, one unit system throughout, and a flat
// summary record the report and chart layers consume.
package plant

import (
	"Kelvin/internal/calc/chiller"
	"Kelvin/internal/calc/copcurve"
	"Kelvin/internal/calc/flow"
	"Kelvin/internal/calc/partload"
	"Kelvin/internal/calc/pump"
	"Kelvin/internal/calc/tower"
	"Kelvin/internal/units"
)

type Input struct {
	Units    units.System   `json:"units"`
	Chiller  chiller.Input  `json:"chiller"`
	Pump     pump.Input     `json:"pump"`
	Tower    tower.Input    `json:"tower"`
	PartLoad partload.Input `json:"part_load"`
	Flow     flow.Input     `json:"flow"`
	// Samples for the COP-vs-load curve; 25/50/75/100 when empty.
	LoadPercents []int `json:"load_percents,omitempty"`
}

// Summary is the flat record of one pass. The report columns come straight
// from here; values stay unrounded except where the calculator contract
// rounds (IPLV, flow rate).
type Summary struct {
	Units units.System `json:"units"`

	CoolingCapacity float64 `json:"cooling_capacity"`
	PowerInputKW    float64 `json:"power_input_kw"`
	COP             float64 `json:"cop"`
	EER             float64 `json:"eer"`
	KWPerTon        float64 `json:"kw_per_ton"`

	PumpHydraulicPowerKW  float64 `json:"pump_hydraulic_power_kw"`
	PumpEfficiencyPercent float64 `json:"pump_efficiency_percent"`

	TowerRange                float64 `json:"tower_range_deg"`
	TowerApproach             float64 `json:"tower_approach_deg"`
	TowerEffectivenessPercent float64 `json:"tower_effectiveness_percent"`

	IPLVKWPerTon float64 `json:"iplv_kw_per_ton"`

	DeltaTC     float64 `json:"delta_t_c"`
	FlowRateM3S float64 `json:"flow_rate_m3_s"`

	Curve []copcurve.Point `json:"curve"`
}

// Evaluate runs the calculators in sheet order. The top-level unit system
// overrides whatever the section inputs carry, so one pass can never mix
// systems. The first failed formula aborts the pass; there is no partial
// summary.
func Evaluate(in Input) (Summary, error) {
	sys, err := units.Normalize(in.Units)
	if err != nil {
		return Summary{}, err
	}
	in.Chiller.Units = sys
	in.Pump.Units = sys

	ch, err := chiller.Calculate(in.Chiller)
	if err != nil {
		return Summary{}, err
	}
	pm, err := pump.Calculate(in.Pump)
	if err != nil {
		return Summary{}, err
	}
	tw, err := tower.Calculate(in.Tower)
	if err != nil {
		return Summary{}, err
	}
	pl, err := partload.Calculate(in.PartLoad)
	if err != nil {
		return Summary{}, err
	}
	fl, err := flow.Calculate(in.Flow)
	if err != nil {
		return Summary{}, err
	}
	curve := copcurve.Calculate(copcurve.Input{COP: ch.COP, LoadPercents: in.LoadPercents})

	return Summary{
		Units:                     sys,
		CoolingCapacity:           in.Chiller.CoolingCapacity,
		PowerInputKW:              in.Chiller.PowerInputKW,
		COP:                       ch.COP,
		EER:                       ch.EER,
		KWPerTon:                  ch.KWPerTon,
		PumpHydraulicPowerKW:      pm.HydraulicPowerKW,
		PumpEfficiencyPercent:     pm.EfficiencyPercent,
		TowerRange:                tw.Range,
		TowerApproach:             tw.Approach,
		TowerEffectivenessPercent: tw.EffectivenessPercent,
		IPLVKWPerTon:              pl.IPLVKWPerTon,
		DeltaTC:                   in.Flow.DeltaTC,
		FlowRateM3S:               fl.FlowRateM3S,
		Curve:                     curve.Points,
	}, nil
}
