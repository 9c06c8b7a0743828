package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"storefront/catalog"
	"storefront/models"
)

var ErrLoadFailed = errors.New("failed to load products")

// Fetcher loads the product list once for the container.
type Fetcher interface {
	Fetch(ctx context.Context) ([]models.Product, error)
}

// SourceFetcher reads the catalog in-process.
type SourceFetcher struct {
	Source catalog.Source
}

func (f SourceFetcher) Fetch(ctx context.Context) ([]models.Product, error) {
	products, err := f.Source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	return products, nil
}

// HTTPFetcher calls a listing endpoint that answers GET with a JSON array of products.
type HTTPFetcher struct {
	URL     string
	Timeout time.Duration
}

func (f HTTPFetcher) Fetch(ctx context.Context) ([]models.Product, error) {
	agent := fiber.Get(f.URL)
	if f.Timeout > 0 {
		agent.Timeout(f.Timeout)
	}

	code, body, errs := agent.Bytes()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, errs[0])
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrLoadFailed, code)
	}

	var products []models.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	return products, nil
}
