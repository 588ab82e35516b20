package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client performs the single Stripe call this backend needs: resolving the
// account behind a secret key. The key is supplied per call and never stored.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes client behavior.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client, for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from the Stripe API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("stripe api error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("stripe api error: %s", e.Message)
}

// Account mirrors the GET /v1/account fields this backend reads.
type Account struct {
	ID              string `json:"id"`
	ChargesEnabled  bool   `json:"charges_enabled"`
	BusinessProfile struct {
		Name string `json:"name"`
	} `json:"business_profile"`
	Settings struct {
		Dashboard struct {
			DisplayName string `json:"display_name"`
		} `json:"dashboard"`
	} `json:"settings"`
}

// DisplayName returns the best available human-readable account name.
func (a *Account) DisplayName() string {
	if a.BusinessProfile.Name != "" {
		return a.BusinessProfile.Name
	}
	return a.Settings.Dashboard.DisplayName
}

// GetAccount authenticates with the secret key as a bearer credential and
// retrieves the account identity.
func (c *Client) GetAccount(ctx context.Context, secretKey string) (*Account, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/account", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errEnvelope struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		// Непарсящееся тело оставляем пустым: APIError покрывает и этот случай.
		_ = json.Unmarshal(body, &errEnvelope)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errEnvelope.Error.Message,
		}
	}

	var account Account
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, fmt.Errorf("failed to parse account: %w", err)
	}

	return &account, nil
}
