// Package weather prefills the cooling tower form with ambient conditions:
// current temperature and humidity from Open-Meteo, wet bulb derived locally.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:    "https://api.open-meteo.com/v1",
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type Current struct {
	TemperatureC            float64 `json:"temperature_2m"`
	RelativeHumidityPercent float64 `json:"relative_humidity_2m"`
}

type forecastResponse struct {
	Current Current `json:"current"`
}

// Current fetches the present temperature and relative humidity at a point.
func (c *Client) Current(ctx context.Context, lat, lon float64) (Current, error) {
	url := fmt.Sprintf("%s/forecast?latitude=%.4f&longitude=%.4f&current=temperature_2m,relative_humidity_2m",
		c.BaseURL, lat, lon)
	var resp forecastResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return Current{}, err
	}
	return resp.Current, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("weather service: %s", res.Status)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
