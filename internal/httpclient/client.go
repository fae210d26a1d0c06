package httpclient

import (
	"context"
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultUserAgent identifies the application to the APIs it calls.
const DefaultUserAgent = "ajudaja/1.0 (+https://github.com/rsilvagit/ajudaja)"

// Options configures the HTTP client.
// MinDelay/MaxDelay space out consecutive requests to the same host; both zero
// disables that spacing.
type Options struct {
	ProxyURL   string
	UserAgent  string
	Timeout    time.Duration
	MinDelay   time.Duration
	MaxDelay   time.Duration
	MaxRetries int
	Backoff    time.Duration
	Logger     *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if o.MaxDelay < o.MinDelay {
		o.MaxDelay = o.MinDelay
	}
	if o.MaxRetries < 1 {
		o.MaxRetries = 3
	}
	if o.Backoff == 0 {
		o.Backoff = 2 * time.Second
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Client wraps http.Client with default headers, per-host pacing and retries.
type Client struct {
	inner      *http.Client
	mu         sync.Mutex
	lastReq    map[string]time.Time
	userAgent  string
	minDelay   time.Duration
	maxDelay   time.Duration
	maxRetries int
	backoff    time.Duration
	logger     *zap.Logger
}

// New creates a Client with the given options.
func New(opts Options) (*Client, error) {
	opts = opts.withDefaults()

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
	}

	if opts.ProxyURL != "" {
		proxyURL, err := url.Parse(opts.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("httpclient: invalid proxy URL: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return &Client{
		inner:      &http.Client{Transport: transport, Timeout: opts.Timeout},
		lastReq:    make(map[string]time.Time),
		userAgent:  opts.UserAgent,
		minDelay:   opts.MinDelay,
		maxDelay:   opts.MaxDelay,
		maxRetries: opts.MaxRetries,
		backoff:    opts.Backoff,
		logger:     opts.Logger,
	}, nil
}

// Do executes the request with default headers and per-host pacing, retrying
// with exponential backoff while the server answers 429 or 503.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	c.setHeaders(req)

	if err := c.rateLimit(req.Context(), req.URL.Host); err != nil {
		return nil, err
	}

	var resp *http.Response
	var err error

	for attempt := range c.maxRetries {
		resp, err = c.inner.Do(req)
		if err != nil {
			return nil, fmt.Errorf("httpclient: request failed: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode != http.StatusServiceUnavailable {
			return resp, nil
		}
		if attempt == c.maxRetries-1 {
			break
		}

		resp.Body.Close()
		wait := time.Duration(1<<uint(attempt)) * c.backoff
		c.logger.Warn("retrying request",
			zap.String("host", req.URL.Host),
			zap.Int("status", resp.StatusCode),
			zap.Duration("wait", wait),
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", c.maxRetries),
		)

		select {
		case <-time.After(wait):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}
	}

	return resp, err
}

// Get issues a GET request to rawURL.
func (c *Client) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: building request: %w", err)
	}
	return c.Do(req)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7")
}

func (c *Client) rateLimit(ctx context.Context, host string) error {
	if c.maxDelay == 0 {
		return nil
	}

	c.mu.Lock()
	last, ok := c.lastReq[host]
	c.lastReq[host] = time.Now()
	c.mu.Unlock()

	if !ok {
		return nil
	}

	elapsed := time.Since(last)
	delay := c.minDelay
	if spread := c.maxDelay - c.minDelay; spread > 0 {
		delay += time.Duration(rand.Int63n(int64(spread)))
	}

	if elapsed < delay {
		wait := delay - elapsed
		c.logger.Debug("rate limit", zap.String("host", host), zap.Duration("wait", wait.Round(time.Millisecond)))
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	c.mu.Lock()
	c.lastReq[host] = time.Now()
	c.mu.Unlock()

	return nil
}
