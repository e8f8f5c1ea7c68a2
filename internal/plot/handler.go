package plot

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"Kelvin/internal/calc/copcurve"
)

type Handler struct{}

// COPLoad charts the derated-COP curve for a full-load COP and load points.
func (h *Handler) COPLoad(w http.ResponseWriter, r *http.Request) {
	var input copcurve.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := copcurve.Calculate(input)

	// Render into memory first so a failed chart never truncates a 200.
	var buf bytes.Buffer
	if err := WritePNG(&buf, res.Points); err != nil {
		if errors.Is(err, ErrTooFewPoints) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Chart generation error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}
