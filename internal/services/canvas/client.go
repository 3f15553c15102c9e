package canvas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/ternarybob/boardbridge/internal/interfaces"
)

const (
	// DefaultBaseURL is the base URL for the canvas API.
	DefaultBaseURL = "https://api.miro.com/v2"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 8

	// DefaultPageSize is the number of items requested per page.
	DefaultPageSize = 50

	// MaxPageSize is the largest page size the remote API accepts.
	MaxPageSize = 50
)

// Client is a canvas API client. Bearer credentials are read from the
// credential store on every request so a reconnect takes effect immediately.
type Client struct {
	baseURL     string
	pageSize    int
	httpClient  *http.Client
	credentials interfaces.CredentialStore
	logger      arbor.ILogger
	limiter     *rate.Limiter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets a custom rate limit.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithPageSize sets the items-per-page used during pagination. Values are
// clamped to [1, MaxPageSize].
func WithPageSize(pageSize int) ClientOption {
	return func(c *Client) {
		if pageSize < 1 {
			pageSize = 1
		}
		if pageSize > MaxPageSize {
			pageSize = MaxPageSize
		}
		c.pageSize = pageSize
	}
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// credentialTokenSource adapts the credential store to oauth2.TokenSource.
// No caching: every request sees the current credential.
type credentialTokenSource struct {
	credentials interfaces.CredentialStore
}

func (s *credentialTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.credentials.Token()
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}

// NewClient creates a new canvas API client.
func NewClient(credentials interfaces.CredentialStore, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		pageSize:    DefaultPageSize,
		credentials: credentials,
		httpClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: &oauth2.Transport{Source: &credentialTokenSource{credentials: credentials}},
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get performs a GET request to the API.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter interrupted: %w", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug().
			Str("url", c.baseURL+path).
			Msg("Canvas API request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The oauth2 transport surfaces a missing credential as a request
		// error; pass it through so callers can match ErrReconnectRequired.
		if errors.Is(err, interfaces.ErrReconnectRequired) {
			return interfaces.ErrReconnectRequired
		}
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// The credential was rejected. Drop it so status reporting flips to
		// disconnected; the user must reconnect explicitly.
		if invErr := c.credentials.Invalidate(ctx); invErr != nil && c.logger != nil {
			c.logger.Warn().Err(invErr).Msg("Failed to invalidate rejected credentials")
		}
		return fmt.Errorf("canvas API rejected credentials (endpoint: %s): %w", path, interfaces.ErrReconnectRequired)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
