package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/urbanseva/booking-service/internal/domain"
)

// Logger narrow logging interface for the client
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client HTTP client for CatalogService, the source of category reference
// data (base prices, sub-services)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a CatalogService client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCategory fetches a category by slug
func (c *Client) GetCategory(ctx context.Context, slug string) (*domain.ServiceCategory, error) {
	reqURL := fmt.Sprintf("%s/internal/categories/%s", c.baseURL, url.PathEscape(slug))

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
		return nil, ErrCategoryNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var category Category
	if err := json.NewDecoder(resp.Body).Decode(&category); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return category.ToDomain(), nil
}

// GetCategoryWithGracefulDegradation fetches a category, degrading to
// ErrServiceDegraded when CatalogService is unreachable. ErrCategoryNotFound
// passes through unchanged so callers can distinguish "unknown slug" from
// "catalog down" — both fall back to the built-in catalog, but an unknown
// slug falls back to the generic category rather than a known one.
func (c *Client) GetCategoryWithGracefulDegradation(ctx context.Context, slug string) (*domain.ServiceCategory, error) {
	category, err := c.GetCategory(ctx, slug)
	if err != nil {
		if err == ErrCategoryNotFound {
			c.log.Info("Category %q not found in catalog", slug)
			return nil, err
		}

		c.log.Error("CatalogService unavailable, applying graceful degradation for category=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: category=%s, error=%v", ErrServiceDegraded, slug, err)
	}

	return category, nil
}
