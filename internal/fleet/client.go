package fleet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jampzdev/dispatch_coordination_system/internal/models"
)

// Client reads the external vehicle-fleet API. The fleet system owns
// the vehicle master data; this service only consumes its availability
// snapshot.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type vehiclesResponse struct {
	Vehicles []models.FleetVehicle `json:"vehicles"`
}

// AvailableVehicles fetches the fleet and keeps only vehicles the
// upstream reports as available. Callers treat any error as "zero
// vehicles available"; it is never surfaced to the end user.
func (c *Client) AvailableVehicles(ctx context.Context) ([]models.FleetVehicle, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("fleet API URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create fleet API request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fleet API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fleet API returned status %d", resp.StatusCode)
	}

	var payload vehiclesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode fleet API response: %w", err)
	}

	available := make([]models.FleetVehicle, 0, len(payload.Vehicles))
	for _, v := range payload.Vehicles {
		if v.Available == 1 && v.Status == "Available" {
			available = append(available, v)
		}
	}
	return available, nil
}
