package consolesdk

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// DefaultTimeout is the HTTP client timeout used when no client is supplied.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is sent on every request unless overridden.
const DefaultUserAgent = "practiceconsole-sdk/1"

// ErrBaseURLRequired is returned when the client is configured without a
// usable base address.
var ErrBaseURLRequired = errors.New("consolesdk: base URL is required")

// SDKClient is the transport for the practice management API. It attaches the
// stored bearer credential to each request and maps responses to typed
// errors. It never clears credentials itself; see Session for that.
//
// An SDKClient is safe for concurrent use.
type SDKClient struct {
	HTTPClient  *http.Client
	Credentials CredentialStore
	Logger      *slog.Logger
	UserAgent   string

	mu      sync.RWMutex
	baseURL string
	headers map[string]string
}

// Option configures a SDKClient.
type Option func(*SDKClient)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *SDKClient) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// WithCredentials sets the store the bearer credential is read from.
func WithCredentials(store CredentialStore) Option {
	return func(c *SDKClient) {
		if store != nil {
			c.Credentials = store
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *SDKClient) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *SDKClient) {
		if ua != "" {
			c.UserAgent = ua
		}
	}
}

// WithHeader adds a default header sent on every request. Per-request
// headers take precedence.
func WithHeader(key, value string) Option {
	return func(c *SDKClient) {
		if strings.TrimSpace(key) != "" {
			c.headers[http.CanonicalHeaderKey(strings.TrimSpace(key))] = value
		}
	}
}

// NewSDKClient creates a client for the API rooted at baseURL.
// An empty or relative base URL is rejected.
func NewSDKClient(baseURL string, opts ...Option) (*SDKClient, error) {
	c := &SDKClient{
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		Credentials: NewMemoryStore(),
		Logger:      slog.Default(),
		UserAgent:   DefaultUserAgent,
		headers:     make(map[string]string),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.Configure(baseURL); err != nil {
		return nil, err
	}

	return c, nil
}

// MustNewSDKClient is like NewSDKClient but panics if the base URL is unusable.
// Intended for program startup where there is nothing sensible to fall back to.
func MustNewSDKClient(baseURL string, opts ...Option) *SDKClient {
	c, err := NewSDKClient(baseURL, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Configure fixes the base address for all subsequent requests. Configuring
// the same address again has no observable effect.
func (c *SDKClient) Configure(baseURL string) error {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.baseURL = normalized
	c.mu.Unlock()

	return nil
}

// BaseURL returns the configured base address without a trailing slash.
func (c *SDKClient) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrBaseURLRequired
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("consolesdk: invalid base URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("consolesdk: base URL %q must be absolute http(s): %w", raw, ErrBaseURLRequired)
	}
	if u.Host == "" {
		return "", fmt.Errorf("consolesdk: base URL %q has no host: %w", raw, ErrBaseURLRequired)
	}

	return strings.TrimRight(raw, "/"), nil
}
