package geoservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger narrow logging interface for the client
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client HTTP client for GeoService, the source of service-area data
// (which cities are serviceable and their travel fees)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a GeoService client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetServiceArea fetches the service area covering a city
func (c *Client) GetServiceArea(ctx context.Context, city string) (*ServiceArea, error) {
	reqURL := fmt.Sprintf("%s/internal/service-areas?city=%s", c.baseURL, url.QueryEscape(city))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusNotFound:
		return nil, ErrAreaNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var area ServiceArea
	if err := json.NewDecoder(resp.Body).Decode(&area); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &area, nil
}

// GetTravelFeeWithGracefulDegradation returns the travel fee for a city.
// Cities outside every service area and GeoService outages both degrade to
// a zero fee so a quote is always produced; outages are logged at ERROR so
// they surface quickly.
func (c *Client) GetTravelFeeWithGracefulDegradation(ctx context.Context, city string) float64 {
	if city == "" {
		return 0
	}

	area, err := c.GetServiceArea(ctx, city)
	if err != nil {
		if err == ErrAreaNotFound {
			c.log.Info("No service area for city=%q, travel fee defaults to 0", city)
			return 0
		}
		c.log.Error("GeoService unavailable, travel fee defaults to 0 for city=%q: %v", city, err)
		return 0
	}

	if !area.IsActive {
		c.log.Info("Service area %q for city=%q is inactive, travel fee defaults to 0", area.Name, city)
		return 0
	}

	return area.TravelFee
}
