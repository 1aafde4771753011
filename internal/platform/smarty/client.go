package smarty

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"user_backend/internal/feature/account/usecase"
)

// candidate is the subset of a US Street API match candidate this client
// reads. Validity only needs the candidate count, the fields are kept for
// logging.
type candidate struct {
	DeliveryLine1 string `json:"delivery_line_1"`
	LastLine      string `json:"last_line"`
}

// Client verifies street addresses against the SmartyStreets US Street API.
//
// The client is fail-closed: any transport error, non-2xx status or
// malformed response is logged and reported as "invalid", never raised to
// the caller. Registration must not proceed on an inconclusive validation.
type Client struct {
	cfg     Config
	client  *http.Client
	limiter Limiter
}

// Compile-time check that Client implements AddressValidator.
var _ usecase.AddressValidator = (*Client)(nil)

// NewClient creates a new Client with the given configuration, HTTP client
// and outbound rate limiter.
func NewClient(cfg Config, client *http.Client, limiter Limiter) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// Validate reports whether the address has at least one deliverable match.
// The lookup uses match=invalid so the API returns candidates even for
// partially correct input; an empty candidate list means invalid.
func (c *Client) Validate(ctx context.Context, street, zipCode, state string) bool {
	c.limiter.WaitIfNeeded()

	q := url.Values{}
	q.Set("key", c.cfg.AuthKey)
	q.Set("street", street)
	q.Set("state", state)
	q.Set("zipcode", zipCode)
	q.Set("match", "invalid")
	q.Set("license", c.cfg.License)

	u := fmt.Sprintf("%s/street-address?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		slog.Warn("smarty request build failed", "error", err)
		return false
	}
	// Website keys are validated against the registered hostname.
	req.Header.Set("Referer", c.cfg.Hostname)

	res, err := c.client.Do(req)
	if err != nil {
		slog.Warn("smarty lookup failed", "error", err)
		return false
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		slog.Warn("smarty lookup rejected", "status", res.StatusCode)
		return false
	}

	var candidates []candidate
	if err := json.NewDecoder(res.Body).Decode(&candidates); err != nil {
		slog.Warn("smarty response decode failed", "error", err)
		return false
	}

	return len(candidates) > 0
}
