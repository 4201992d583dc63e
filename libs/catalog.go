package libs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"furniture-shop/models"
)

// CatalogQuery narrows a product listing; empty fields are ignored.
type CatalogQuery struct {
	Category string
	Tag      string
}

// Catalog reads product documents from the headless CMS. The queries are the
// fixed read set the storefront needs, nothing more.
type Catalog interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context, query CatalogQuery) ([]models.Product, error)
}

type HTTPCatalog struct {
	baseURL string
	client  *http.Client
}

func NewHTTPCatalog(baseURL string) *HTTPCatalog {
	return &HTTPCatalog{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (c *HTTPCatalog) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, "/products/"+url.PathEscape(id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *HTTPCatalog) ListProducts(ctx context.Context, query CatalogQuery) ([]models.Product, error) {
	params := url.Values{}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.Tag != "" {
		params.Set("tag", query.Tag)
	}

	path := "/products"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var products []models.Product
	if err := c.get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPCatalog) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("catalog document not found")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog responded with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return nil
}
