package batch

import (
	"encoding/json"
	"errors"
	"net/http"

	"Kelvin/internal/calc"
)

type Handler struct{}

func (h *Handler) Chiller(w http.ResponseWriter, r *http.Request) {
	var input ChillerBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateChiller(input)
	if err != nil {
		if errors.Is(err, calc.ErrDivisionByZero) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
