// Package weather provides the optional upstream forecast client. When no
// upstream is configured the advisory service generates a synthetic
// forecast instead.
package weather

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/krishimitra/server/internal/config"
	"github.com/krishimitra/server/internal/domain/models"
)

// Client fetches a 7-day forecast for a location.
type Client interface {
	Forecast(ctx context.Context, location string) (*models.WeatherForecast, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a forecast client against the configured base URL.
func NewClient(cfg config.WeatherConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)

	return &APIClient{httpClient: restyClient}
}

type apiError struct {
	Error string `json:"error"`
}

// Forecast requests the upstream forecast for location.
func (c *APIClient) Forecast(ctx context.Context, location string) (*models.WeatherForecast, error) {
	result := new(models.WeatherForecast)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("location", location).
		SetQueryParam("days", "7").
		SetResult(result).
		SetError(apiErr).
		Get("/forecast")
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		if apiErr.Error != "" {
			return nil, fmt.Errorf("forecast upstream status %d: %s", resp.StatusCode(), apiErr.Error)
		}
		return nil, fmt.Errorf("forecast upstream status %d", resp.StatusCode())
	}

	result.Location = location
	return result, nil
}
