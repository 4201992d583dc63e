package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"furniture-shop/libs"
	"furniture-shop/models"
)

const productCacheTTL = 5 * time.Minute

// CatalogService proxies the fixed catalog read set. Single-product lookups
// go through a redis read-through cache with singleflight so a popular
// product page cannot stampede the CMS.
type CatalogService struct {
	catalog libs.Catalog
	sfg     singleflight.Group
}

func NewCatalogService(catalog libs.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	v, err, _ := s.sfg.Do(id, func() (interface{}, error) {
		if product := s.cachedProduct(ctx, id); product != nil {
			return product, nil
		}

		product, err := s.catalog.GetProduct(ctx, id)
		if err != nil {
			return nil, err
		}

		go s.cacheProduct(id, product)
		return product, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Product), nil
}

func (s *CatalogService) ListProducts(ctx context.Context, query libs.CatalogQuery) ([]models.Product, error) {
	return s.catalog.ListProducts(ctx, query)
}

func (s *CatalogService) cachedProduct(ctx context.Context, id string) *models.Product {
	if models.RedisClient == nil {
		return nil
	}

	raw, err := models.RedisClient.Get(ctx, productCacheKey(id)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Product cache read failed for %s: %v", id, err)
		}
		return nil
	}

	var product models.Product
	if err := json.Unmarshal([]byte(raw), &product); err != nil {
		log.Printf("Dropping unreadable cached product %s: %v", id, err)
		return nil
	}
	return &product
}

func (s *CatalogService) cacheProduct(id string, product *models.Product) {
	if models.RedisClient == nil {
		return
	}

	raw, err := json.Marshal(product)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := models.RedisClient.Set(ctx, productCacheKey(id), raw, productCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache product %s: %v", id, err)
	}
}

func productCacheKey(id string) string {
	return "catalog:product:" + id
}
