package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/andriannf/storedesk/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	listKey    = "products:all"
	productTTL = 5 * time.Minute
)

func productKey(id uuid.UUID) string {
	return "products:" + id.String()
}

// ProductCache is a best-effort read cache in front of the product
// table. Any redis failure degrades to a database read.
type ProductCache struct {
	client *redis.Client
}

func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

func (c *ProductCache) GetList(ctx context.Context) ([]models.Product, bool) {
	payload, err := c.client.Get(ctx, listKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("redis read failed, falling back to database")
		}
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal(payload, &products); err != nil {
		return nil, false
	}
	return products, true
}

func (c *ProductCache) SetList(ctx context.Context, products []models.Product) {
	payload, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, listKey, payload, productTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to populate product list cache")
	}
}

func (c *ProductCache) Get(ctx context.Context, id uuid.UUID) (*models.Product, bool) {
	payload, err := c.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("redis read failed, falling back to database")
		}
		return nil, false
	}
	var product models.Product
	if err := json.Unmarshal(payload, &product); err != nil {
		return nil, false
	}
	return &product, true
}

func (c *ProductCache) Set(ctx context.Context, product *models.Product) {
	payload, err := json.Marshal(product)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, productKey(product.ID), payload, productTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to populate product cache")
	}
}

// Invalidate drops both the single-product entry and the list entry.
// Called on every product mutation.
func (c *ProductCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := c.client.Del(ctx, listKey, productKey(id)).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate product cache")
	}
}
