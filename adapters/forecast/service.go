package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"climatelens/domain/weather"
)

// ServiceClient delegates forecasting to an external HTTP service (an
// additive time-series model behind a small JSON API). The model itself is
// opaque to this adapter.
type ServiceClient struct {
	baseURL string
	client  *http.Client
}

// NewServiceClient creates a forecast service client.
func NewServiceClient(baseURL string) *ServiceClient {
	return &ServiceClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type forecastRequest struct {
	Series      []weather.TimePoint `json:"series"`
	HorizonDays int                 `json:"horizon_days"`
}

type forecastResponse struct {
	Points []weather.TimePoint `json:"points"`
}

// Forecast posts the series and horizon to the service and returns the
// predicted continuation covering the input range plus the horizon.
func (c *ServiceClient) Forecast(ctx context.Context, series []weather.TimePoint, horizonDays int) ([]weather.TimePoint, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("forecast input series is empty")
	}

	body, err := json.Marshal(forecastRequest{Series: series, HorizonDays: horizonDays})
	if err != nil {
		return nil, fmt.Errorf("marshal forecast request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/forecast", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build forecast request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast service returned status %d", resp.StatusCode)
	}

	var fr forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}
	if len(fr.Points) == 0 {
		return nil, fmt.Errorf("forecast service returned no points")
	}
	return fr.Points, nil
}
