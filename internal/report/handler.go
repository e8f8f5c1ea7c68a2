package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"Kelvin/internal/calc"
	"Kelvin/internal/calc/plant"
)

// Meta carries the free-text fields printed on the PDF title block.
type Meta struct {
	Title   string `json:"title"`
	Project string `json:"project"`
	Author  string `json:"author"`
	Notes   string `json:"notes"`
}

type Input struct {
	Meta
	Plant plant.Input `json:"plant"`
}

type Handler struct{}

func (h *Handler) evaluate(w http.ResponseWriter, r *http.Request) (Input, plant.Summary, bool) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return Input{}, plant.Summary{}, false
	}
	s, err := plant.Evaluate(input.Plant)
	if err != nil {
		if errors.Is(err, calc.ErrDivisionByZero) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return Input{}, plant.Summary{}, false
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return Input{}, plant.Summary{}, false
	}
	return input, s, true
}

func (h *Handler) CSV(w http.ResponseWriter, r *http.Request) {
	_, s, ok := h.evaluate(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\"chiller_plant_report.csv\"")
	if err := WriteCSV(w, s); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	input, s, ok := h.evaluate(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"chiller_plant_report.pdf\"")
	if err := WritePDF(w, input.Meta, s); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func (h *Handler) XLSX(w http.ResponseWriter, r *http.Request) {
	_, s, ok := h.evaluate(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"chiller_plant_report.xlsx\"")
	if err := WriteXLSX(w, s); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
