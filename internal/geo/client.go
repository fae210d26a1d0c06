// Package geo looks up Brazilian states and cities in the IBGE localidades API.
//
// Lookups never fail from the caller's point of view: any network, status or
// decoding problem is logged and reported as an empty list.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/rsilvagit/ajudaja/internal/httpclient"
	"github.com/rsilvagit/ajudaja/internal/model"
)

// DefaultBaseURL is the public IBGE localidades endpoint.
const DefaultBaseURL = "https://servicodados.ibge.gov.br/api/v1/localidades"

// Cache stores decoded lookup results. *cache.Cache satisfies it.
type Cache interface {
	Get(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, v any) error
}

// Client fetches states and cities.
type Client struct {
	http    *httpclient.Client
	baseURL string
	cache   Cache
	logger  *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at another server, ex: a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithCache puts a cache in front of the API.
func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithLogger sets the logger used to report absorbed failures.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New returns a Client using the shared HTTP client.
func New(client *httpclient.Client, opts ...Option) *Client {
	c := &Client{
		http:    client,
		baseURL: DefaultBaseURL,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchStates returns all states ordered by name, or an empty list on failure.
func (c *Client) FetchStates(ctx context.Context) []model.IBGEState {
	states, err := fetch[model.IBGEState](ctx, c, "estados", c.baseURL+"/estados?orderBy=nome")
	if err != nil {
		c.logger.Error("Erro ao buscar estados do IBGE", zap.Error(err))
		return []model.IBGEState{}
	}
	return states
}

// FetchCities returns the cities of a state ordered by name, or an empty list
// on failure.
func (c *Client) FetchCities(ctx context.Context, stateID int) []model.IBGECity {
	id := strconv.Itoa(stateID)
	cities, err := fetch[model.IBGECity](ctx, c, "municipios:"+id, c.baseURL+"/estados/"+id+"/municipios?orderBy=nome")
	if err != nil {
		c.logger.Error("Erro ao buscar cidades do IBGE", zap.Int("state_id", stateID), zap.Error(err))
		return []model.IBGECity{}
	}
	return cities
}

func fetch[T any](ctx context.Context, c *Client, key, url string) ([]T, error) {
	var items []T
	if c.cache != nil && c.cache.Get(ctx, key, &items) {
		c.logger.Debug("geo cache hit", zap.String("key", key))
		return items, nil
	}

	resp, err := c.http.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("geo: executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geo: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("geo: decoding response: %w", err)
	}
	if items == nil {
		items = []T{}
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, items); err != nil {
			c.logger.Warn("geo cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return items, nil
}
