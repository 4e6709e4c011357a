package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// Product mirrors the external catalog's shape.
type Product struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
}

type Service interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

type httpService struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPService(baseURL string) Service {
	return &httpService{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *httpService) GetProduct(ctx context.Context, productID string) (Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/products/"+productID, nil)
	if err != nil {
		return Product{}, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Product{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Product{}, fmt.Errorf("catalog lookup for %s: status %d", productID, resp.StatusCode)
	}

	// The upstream catalog uses a numeric id; keep it opaque on our side.
	var raw struct {
		ID       json.Number `json:"id"`
		Title    string      `json:"title"`
		Price    float64     `json:"price"`
		Image    string      `json:"image"`
		Category string      `json:"category"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Product{}, err
	}

	return Product{
		ID:       raw.ID.String(),
		Title:    raw.Title,
		Price:    raw.Price,
		Image:    raw.Image,
		Category: raw.Category,
	}, nil
}

const (
	cacheKeyPrefix = "catalog:product:"
	cacheTTL       = 10 * time.Minute
)

type cachedService struct {
	inner Service
	rdb   *redis.Client
}

// NewCachedService wraps a catalog lookup with a redis read-through cache.
func NewCachedService(inner Service, rdb *redis.Client) Service {
	return &cachedService{inner: inner, rdb: rdb}
}

func (s *cachedService) GetProduct(ctx context.Context, productID string) (Product, error) {
	key := cacheKeyPrefix + productID

	// Cache trouble never blocks a lookup; any miss or error falls through
	// to the upstream catalog.
	if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
		var p Product
		if err := json.Unmarshal(raw, &p); err == nil {
			return p, nil
		}
	}

	p, err := s.inner.GetProduct(ctx, productID)
	if err != nil {
		return Product{}, err
	}

	if encoded, err := json.Marshal(p); err == nil {
		_ = s.rdb.Set(ctx, key, encoded, cacheTTL).Err()
	}
	return p, nil
}
