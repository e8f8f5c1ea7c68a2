package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"Kelvin/internal/calc/flow"
	"Kelvin/internal/calc/partload"
	"Kelvin/internal/calc/plant"
	"Kelvin/internal/plot"
	"Kelvin/internal/report"
	"Kelvin/internal/units"
)

type evaluateOpts struct {
	file  string
	units string

	csvPath   string
	pdfPath   string
	xlsxPath  string
	chartPath string
}

func runEvaluate(o evaluateOpts) error {
	data, err := os.ReadFile(o.file)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	var in plant.Input
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}
	if o.units != "" {
		in.Units = units.System(o.units)
	}

	s, err := plant.Evaluate(in)
	if err != nil {
		return err
	}

	printSummary(s)

	if o.csvPath != "" {
		if err := writeFile(o.csvPath, func(w io.Writer) error { return report.WriteCSV(w, s) }); err != nil {
			return err
		}
	}
	if o.pdfPath != "" {
		if err := writeFile(o.pdfPath, func(w io.Writer) error { return report.WritePDF(w, report.Meta{}, s) }); err != nil {
			return err
		}
	}
	if o.xlsxPath != "" {
		if err := writeFile(o.xlsxPath, func(w io.Writer) error { return report.WriteXLSX(w, s) }); err != nil {
			return err
		}
	}
	if o.chartPath != "" {
		if err := writeFile(o.chartPath, func(w io.Writer) error { return plot.WritePNG(w, s.Curve) }); err != nil {
			return err
		}
	}
	return nil
}

func runIPLV(args []string) error {
	vals := make([]float64, 4)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", a, err)
		}
		vals[i] = v
	}

	res, err := partload.Calculate(partload.Input{
		KWPerTon100: vals[0],
		KWPerTon75:  vals[1],
		KWPerTon50:  vals[2],
		KWPerTon25:  vals[3],
	})
	if err != nil {
		return err
	}
	fmt.Printf("IPLV/NPLV: %.3f kW/Ton\n", res.IPLVKWPerTon)
	return nil
}

func runFlow(args []string) error {
	capacity, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[0], err)
	}
	deltaT, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[1], err)
	}

	res, err := flow.Calculate(flow.Input{CapacityKW: capacity, DeltaTC: deltaT})
	if err != nil {
		return err
	}
	fmt.Printf("Flow rate: %.3f m3/s (%.1f kW over %.1f degC)\n", res.FlowRateM3S, capacity, deltaT)
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
