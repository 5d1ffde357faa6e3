package weather

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/config"
)

// Client exposes the weather lookups used by the application.
type Client interface {
	CurrentTemperature(ctx context.Context, latitude, longitude float64) (float64, error)
}

// APIClient is a resty-backed Open-Meteo client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a weather API client using the provided configuration values.
func NewClient(cfg config.WeatherConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(10 * time.Second)

	return &APIClient{httpClient: restyClient}
}

type currentWeatherResponse struct {
	Current struct {
		Temperature2m float64 `json:"temperature_2m"`
	} `json:"current"`
}

type apiError struct {
	Reason string `json:"reason"`
	Error  bool   `json:"error"`
}

// CurrentTemperature fetches the current 2 m air temperature in °C for the
// given coordinates.
func (c *APIClient) CurrentTemperature(ctx context.Context, latitude, longitude float64) (float64, error) {
	result := new(currentWeatherResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":  fmt.Sprintf("%.4f", latitude),
			"longitude": fmt.Sprintf("%.4f", longitude),
			"current":   "temperature_2m",
		}).
		SetResult(result).
		SetError(apiErr).
		Get("/v1/forecast")
	if err != nil {
		return 0, fmt.Errorf("fetch current temperature: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return 0, fmt.Errorf("weather api error: code=%d, reason=%s", resp.StatusCode(), apiErr.Reason)
	}

	return result.Current.Temperature2m, nil
}
