package weather

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type Handler struct {
	Client *Client
}

type Result struct {
	TemperatureC            float64 `json:"temperature_c"`
	RelativeHumidityPercent float64 `json:"relative_humidity_percent"`
	WetBulbC                float64 `json:"wet_bulb_c"`
}

// Ambient answers GET ?lat=..&lon=.. with the current conditions and the
// derived wet bulb, ready to paste into the tower form.
func (h *Handler) Ambient(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		http.Error(w, "Invalid coordinates", http.StatusBadRequest)
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		http.Error(w, "Invalid coordinates", http.StatusBadRequest)
		return
	}

	cur, err := h.Client.Current(r.Context(), lat, lon)
	if err != nil {
		http.Error(w, "Weather service unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Result{
		TemperatureC:            cur.TemperatureC,
		RelativeHumidityPercent: cur.RelativeHumidityPercent,
		WetBulbC:                WetBulb(cur.TemperatureC, cur.RelativeHumidityPercent),
	})
}
