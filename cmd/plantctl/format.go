package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"Kelvin/internal/calc/plant"
)

func printSummary(s plant.Summary) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Units\t%s\n", s.Units)
	fmt.Fprintf(tw, "COP\t%.3f\n", s.COP)
	fmt.Fprintf(tw, "EER\t%.3f\n", s.EER)
	fmt.Fprintf(tw, "kW/Ton\t%.3f\n", s.KWPerTon)
	fmt.Fprintf(tw, "Pump hydraulic power\t%.3f kW\n", s.PumpHydraulicPowerKW)
	fmt.Fprintf(tw, "Pump efficiency\t%.2f %%\n", s.PumpEfficiencyPercent)
	fmt.Fprintf(tw, "Tower range\t%.2f\n", s.TowerRange)
	fmt.Fprintf(tw, "Tower approach\t%.2f\n", s.TowerApproach)
	fmt.Fprintf(tw, "Tower effectiveness\t%.2f %%\n", s.TowerEffectivenessPercent)
	fmt.Fprintf(tw, "IPLV/NPLV\t%.3f kW/Ton\n", s.IPLVKWPerTon)
	fmt.Fprintf(tw, "Flow rate\t%.3f m3/s at %.1f degC dT\n", s.FlowRateM3S, s.DeltaTC)
	tw.Flush()

	fmt.Println()
	fmt.Println("COP vs load:")
	for _, p := range s.Curve {
		fmt.Printf("  %3d%%  %.3f\n", p.LoadPercent, p.COP)
	}
}
