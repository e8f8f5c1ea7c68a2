package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"Kelvin/internal/calc/plant"
)

// WritePDF renders the one-page report. Labels stay ASCII; the CSV keeps
// the typographic column names.
func WritePDF(w io.Writer, meta Meta, s plant.Summary) error {
	title := meta.Title
	if title == "" {
		title = "Chiller Plant Performance Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Unit system: %s", s.Units))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Chiller")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line(pdf, "Cooling capacity", "%.2f", s.CoolingCapacity)
	line(pdf, "Power input (kW)", "%.2f", s.PowerInputKW)
	line(pdf, "COP", "%.2f", s.COP)
	line(pdf, "EER", "%.2f", s.EER)
	line(pdf, "kW/Ton", "%.2f", s.KWPerTon)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Chilled Water Pump")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line(pdf, "Hydraulic power (kW)", "%.3f", s.PumpHydraulicPowerKW)
	line(pdf, "Efficiency (%)", "%.2f", s.PumpEfficiencyPercent)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Cooling Tower")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line(pdf, "Range (deg)", "%.2f", s.TowerRange)
	line(pdf, "Approach (deg)", "%.2f", s.TowerApproach)
	line(pdf, "Effectiveness (%)", "%.2f", s.TowerEffectivenessPercent)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Part Load and Flow")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line(pdf, "IPLV/NPLV (kW/Ton)", "%.3f", s.IPLVKWPerTon)
	line(pdf, "Chilled water Delta-T (C)", "%.1f", s.DeltaTC)
	line(pdf, "Required flow rate (m3/s)", "%.3f", s.FlowRateM3S)

	if meta.Notes != "" {
		pdf.Ln(6)
		pdf.MultiCell(0, 6, meta.Notes, "", "L", false)
	}

	return pdf.Output(w)
}

func line(pdf *gofpdf.Fpdf, label, format string, v float64) {
	pdf.Cell(0, 6, fmt.Sprintf("%s: "+format, label, v))
	pdf.Ln(6)
}
