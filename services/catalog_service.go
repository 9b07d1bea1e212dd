package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"vibe-shop/models"

	"github.com/redis/go-redis/v9"
)

const (
	productCacheKey = "products_list"
	productCacheTTL = 5 * time.Minute
)

// CatalogService serves the product listing, optionally through a Redis
// cache. The catalog is immutable after seeding, so a short TTL is only a
// guard against out-of-band edits.
type CatalogService struct {
	catalogRepo CatalogRepository
	cache       *redis.Client
}

func NewCatalogService(catalogRepo CatalogRepository, cache *redis.Client) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		cache:       cache,
	}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, productCacheKey).Result()
		if err == nil {
			var products []models.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
		} else if err != redis.Nil {
			log.Printf("cache get error: %v", err)
		}
	}

	products, err := s.catalogRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if jsonData, err := json.Marshal(products); err == nil {
			if err := s.cache.Set(ctx, productCacheKey, jsonData, productCacheTTL).Err(); err != nil {
				log.Printf("cache set error: %v", err)
			}
		}
	}

	return products, nil
}
