package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	aclcountry "github.com/protocolo-ceremonial/flagplan/internal/adapters/clients/acl/country"
	"github.com/protocolo-ceremonial/flagplan/internal/domain"
	"github.com/protocolo-ceremonial/flagplan/internal/domain/country"
	"github.com/protocolo-ceremonial/flagplan/internal/platform/httpclient"
	"github.com/protocolo-ceremonial/flagplan/internal/ports"
)

var (
	_ ports.ReferenceClient = (*ReferenceClient)(nil)
	_ ports.HealthChecker   = (*ReferenceClient)(nil)
)

const statesPath = "/api/v1/countries"

// ReferenceClient is the outbound adapter for the remote country reference
// registry. It implements [ports.ReferenceClient].
//
// The registry's "state" resources are translated into domain countries by
// the [aclcountry] translators and its error answers by [TranslateHTTPError].
// The last table is kept with its ETag and revalidated with If-None-Match, so
// an unchanged table costs one 304.
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry with exponential backoff and OpenTelemetry tracing.
type ReferenceClient struct {
	http   *httpclient.Client
	logger *slog.Logger

	mu     sync.Mutex
	etag   string
	cached []country.Country
}

// NewReferenceClient creates a ReferenceClient that sends requests through
// client, whose BaseURL points at the registry root.
func NewReferenceClient(client *httpclient.Client, logger *slog.Logger) *ReferenceClient {
	return &ReferenceClient{http: client, logger: logger}
}

// ListCountries fetches GET /api/v1/countries and returns the translated
// table in registry order.
func (c *ReferenceClient) ListCountries(ctx context.Context) ([]country.Country, error) {
	c.mu.Lock()
	etag := c.etag
	c.mu.Unlock()

	page, err := c.fetchStates(ctx, etag)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if page.notModified {
		if c.cached == nil {
			return nil, fmt.Errorf("%w: registry answered 304 without a cached table", domain.ErrUnavailable)
		}
		c.logger.DebugContext(ctx, "reference table not modified", slog.String("etag", c.etag))
		return slices.Clone(c.cached), nil
	}

	countries, err := aclcountry.ToDomainCountryList(page.body)
	if err != nil {
		return nil, fmt.Errorf("%w: translating registry response: %w", domain.ErrUnavailable, err)
	}
	c.etag = page.etag
	c.cached = countries
	return slices.Clone(countries), nil
}

// statesPage is one answer to the states listing.
type statesPage struct {
	body        aclcountry.StateListResponseDTO
	etag        string
	notModified bool
}

// fetchStates performs the conditional GET. Transport failures and bodies
// that do not decode wrap domain.ErrUnavailable; error statuses go through
// TranslateHTTPError.
func (c *ReferenceClient) fetchStates(ctx context.Context, etag string) (statesPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.http.BaseURL()+statesPath, http.NoBody)
	if err != nil {
		return statesPage{}, fmt.Errorf("building registry request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}

	resp, err := c.http.Do(ctx, req)
	if resp == nil {
		c.logger.ErrorContext(ctx, "registry unreachable",
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return statesPage{}, fmt.Errorf("%w: GET %s: %w", domain.ErrUnavailable, statesPath, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.WarnContext(ctx, "closing registry response", slog.String("error", cerr.Error()))
		}
	}()

	// Exhausted retries still hand back the last response, which carries the
	// status worth translating.
	switch resp.StatusCode {
	case http.StatusNotModified:
		return statesPage{notModified: true, etag: resp.Header.Get("ETag")}, nil
	case http.StatusOK:
	default:
		c.logger.ErrorContext(ctx, "registry rejected request",
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
		)
		return statesPage{}, TranslateHTTPError(resp)
	}

	page := statesPage{etag: resp.Header.Get("ETag")}
	if err := json.NewDecoder(resp.Body).Decode(&page.body); err != nil {
		return statesPage{}, fmt.Errorf("%w: decoding registry response: %w", domain.ErrUnavailable, err)
	}
	return page, nil
}
