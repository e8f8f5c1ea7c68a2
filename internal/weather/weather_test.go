package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWetBulbStull(t *testing.T) {
	// Worked example from the Stull (2011) paper.
	assert.InDelta(t, 13.7, WetBulb(20, 50), 0.05)

	// Saturated air reads the dry bulb back, within regression error.
	assert.InDelta(t, 25, WetBulb(25, 100), 0.1)

	// Unsaturated air always reads below the dry bulb.
	assert.Less(t, WetBulb(30, 40), 30.0)
}

func fakeMeteo(t *testing.T, temp, rh float64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "temperature_2m,relative_humidity_2m", r.URL.Query().Get("current"))
		assert.NotEmpty(t, r.URL.Query().Get("latitude"))
		assert.NotEmpty(t, r.URL.Query().Get("longitude"))
		fmt.Fprintf(w, `{"current":{"temperature_2m":%g,"relative_humidity_2m":%g}}`, temp, rh)
	}))
}

func TestClientCurrent(t *testing.T) {
	ts := fakeMeteo(t, 20, 50)
	defer ts.Close()

	c := &Client{BaseURL: ts.URL + "/v1", HTTPClient: ts.Client()}
	cur, err := c.Current(context.Background(), 52.52, 13.41)
	require.NoError(t, err)
	assert.InDelta(t, 20, cur.TemperatureC, 1e-12)
	assert.InDelta(t, 50, cur.RelativeHumidityPercent, 1e-12)
}

func TestClientCurrentUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL + "/v1", HTTPClient: ts.Client()}
	_, err := c.Current(context.Background(), 0, 0)
	require.Error(t, err)
}

func TestHandlerAmbient(t *testing.T) {
	ts := fakeMeteo(t, 20, 50)
	defer ts.Close()

	h := &Handler{Client: &Client{BaseURL: ts.URL + "/v1", HTTPClient: ts.Client()}}
	req := httptest.NewRequest(http.MethodGet, "/?lat=52.52&lon=13.41", nil)
	rr := httptest.NewRecorder()
	h.Ambient(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var out Result
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
	assert.InDelta(t, 20, out.TemperatureC, 1e-12)
	assert.InDelta(t, 50, out.RelativeHumidityPercent, 1e-12)
	assert.InDelta(t, 13.7, out.WetBulbC, 0.05)
}

func TestHandlerAmbientRejectsBadCoordinates(t *testing.T) {
	h := &Handler{Client: NewClient()}
	req := httptest.NewRequest(http.MethodGet, "/?lat=north&lon=13.41", nil)
	rr := httptest.NewRecorder()
	h.Ambient(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
