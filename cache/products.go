package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kirtanpatel0001/gulab-mehandi-sub000/models"
	"github.com/redis/go-redis/v9"
)

const (
	productTTL     = 5 * time.Minute
	allProductsKey = "products:all"
)

// ProductCache is a read cache over the product catalog. Redis failures
// degrade to the database; they are logged and never surfaced to callers.
type ProductCache struct {
	redis *redis.Client
}

// NewProductCache connects to REDIS_URL. Returns nil when the variable is
// unset, in which case callers read straight from the database.
func NewProductCache() *ProductCache {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("cache: invalid REDIS_URL, running without cache: %v", err)
		return nil
	}
	return &ProductCache{redis: redis.NewClient(opts)}
}

// GetAll returns the cached catalog, falling back to load on a miss.
func (c *ProductCache) GetAll(ctx context.Context, load func() ([]models.Product, error)) ([]models.Product, error) {
	data, err := c.redis.Get(ctx, allProductsKey).Bytes()
	switch {
	case err == nil:
		var products []models.Product
		if err := json.Unmarshal(data, &products); err != nil {
			log.Printf("cache: failed to unmarshal cached products (continuing with DB): %v", err)
			break
		}
		return products, nil
	case errors.Is(err, redis.Nil):
	default:
		log.Printf("cache: redis error (continuing with DB): %v", err)
	}

	products, err := load()
	if err != nil {
		return nil, err
	}

	if jsonData, err := json.Marshal(products); err == nil {
		if err := c.redis.Set(ctx, allProductsKey, jsonData, productTTL).Err(); err != nil {
			log.Printf("cache: failed to cache products: %v", err)
		}
	}
	return products, nil
}

// GetByID returns one cached product, falling back to load on a miss.
func (c *ProductCache) GetByID(ctx context.Context, id string, load func() (*models.Product, error)) (*models.Product, error) {
	key := fmt.Sprintf("product:%s", id)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var product models.Product
		if err := json.Unmarshal(data, &product); err != nil {
			log.Printf("cache: failed to unmarshal cached product (continuing with DB): %v", err)
			break
		}
		return &product, nil
	case errors.Is(err, redis.Nil):
	default:
		log.Printf("cache: redis error (continuing with DB): %v", err)
	}

	product, err := load()
	if err != nil {
		return nil, err
	}

	if jsonData, err := json.Marshal(product); err == nil {
		if err := c.redis.Set(ctx, key, jsonData, productTTL).Err(); err != nil {
			log.Printf("cache: failed to cache product: %v", err)
		}
	}
	return product, nil
}

// Invalidate drops the catalog key and one product key after an admin write.
func (c *ProductCache) Invalidate(ctx context.Context, id string) {
	if err := c.redis.Del(ctx, allProductsKey).Err(); err != nil {
		log.Printf("cache: failed to delete %s: %v", allProductsKey, err)
	}
	if id != "" {
		key := fmt.Sprintf("product:%s", id)
		if err := c.redis.Del(ctx, key).Err(); err != nil {
			log.Printf("cache: failed to delete %s: %v", key, err)
		}
	}
}
