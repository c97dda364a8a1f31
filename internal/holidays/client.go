package holidays

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/benvon/smart-calendar/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
)

const tracerName = "github.com/benvon/smart-calendar/internal/holidays"

const (
	// DefaultBaseURL is the public holiday API endpoint
	DefaultBaseURL = "https://date.nager.at/api/v3/"
	// DefaultCountry is the country code requested when none is configured
	DefaultCountry = "US"
	// maxResponseSize caps the holiday response body (1MB)
	maxResponseSize = 1 << 20
)

// ErrUnexpectedStatus is returned when the holiday API answers with a non-2xx status
var ErrUnexpectedStatus = errors.New("public holidays request failed")

// Client fetches public holidays over HTTP
type Client struct {
	baseURL    string
	country    string
	httpClient *http.Client
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP client (e.g. for tracing transports)
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// NewClient creates a holiday API client. Empty arguments fall back to the defaults.
func NewClient(baseURL, country string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if country == "" {
		country = DefaultCountry
	}

	c := &Client{
		baseURL:    baseURL,
		country:    strings.ToUpper(country),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Country returns the configured country code
func (c *Client) Country() string {
	return c.country
}

// PublicHolidays returns every holiday the provider lists for year
func (c *Client) PublicHolidays(ctx context.Context, year int) (holidays []models.PublicHoliday, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "holidays.fetch")
	span.SetAttributes(
		attribute.Int("holidays.year", year),
		attribute.String("holidays.country", c.country),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "holiday fetch failed")
		} else {
			span.SetAttributes(attribute.Int("holidays.count", len(holidays)))
		}
		span.End()
	}()

	endpoint := fmt.Sprintf("%sPublicHolidays/%d/%s", c.baseURL, year, url.PathEscape(c.country))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch public holidays: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d %s", ErrUnexpectedStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read public holidays response: %w", err)
	}

	if err := json.Unmarshal(body, &holidays); err != nil {
		return nil, fmt.Errorf("failed to parse public holidays: %w", err)
	}
	return holidays, nil
}
