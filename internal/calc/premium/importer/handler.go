package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"Kelvin/internal/calc/chiller"
	"Kelvin/internal/units"
)

type Handler struct{}

type ChillerImportResult struct {
	Count   int              `json:"count"`
	Results []chiller.Result `json:"results"`
}

// Chiller imports a spreadsheet of readings. One sheet, header row first,
// then one reading per row: cooling capacity, power input kW. The unit
// system comes from the "units" form field and applies to every row.
// Malformed rows are skipped, not fatal.
func (h *Handler) Chiller(w http.ResponseWriter, r *http.Request) {
	sys, err := units.Normalize(units.System(r.FormValue("units")))
	if err != nil {
		http.Error(w, "Invalid units", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []chiller.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseChillerRow(rows[i])
		if err != nil {
			continue
		}
		input.Units = sys
		res, err := chiller.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ChillerImportResult{Count: len(results), Results: results})
}

func parseChillerRow(row []string) (chiller.Input, error) {
	// expected: cooling_capacity, power_input_kw
	if len(row) < 2 {
		return chiller.Input{}, fmt.Errorf("bad row")
	}
	capacity, err := toFloat(row[0])
	if err != nil {
		return chiller.Input{}, err
	}
	power, err := toFloat(row[1])
	if err != nil {
		return chiller.Input{}, err
	}
	return chiller.Input{
		CoolingCapacity: capacity,
		PowerInputKW:    power,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
