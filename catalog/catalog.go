package catalog

import (
	"context"

	"storefront/models"
)

// Source lists the products offered by the storefront.
type Source interface {
	List(ctx context.Context) ([]models.Product, error)
}

// fixture is the demo catalog served when no database is configured.
var fixture = []models.Product{
	{ID: "p1", Name: "Laptop Pro 14", Price: 1299, Category: "Electronics", Stock: 5},
	{ID: "p2", Name: "Noise-Cancel Headphones", Price: 199, Category: "Electronics", Stock: 7},
	{ID: "p3", Name: "Smartphone X", Price: 899, Category: "Electronics", Stock: 4},
	{ID: "p4", Name: "Ergo Desk Chair", Price: 179, Category: "Furniture", Stock: 6},
	{ID: "p5", Name: "Standing Desk", Price: 349, Category: "Furniture", Stock: 3},
	{ID: "p6", Name: "Ceramic Mug Set", Price: 24, Category: "Home", Stock: 10},
	{ID: "p7", Name: "Cotton Throw", Price: 39, Category: "Home", Stock: 8},
	{ID: "p8", Name: "Running Shoes", Price: 129, Category: "Apparel", Stock: 9},
	{ID: "p9", Name: "Hoodie", Price: 69, Category: "Apparel", Stock: 5},
	{ID: "p10", Name: "Bluetooth Speaker", Price: 59, Category: "Electronics", Stock: 12},
	{ID: "p11", Name: "Table Lamp", Price: 49, Category: "Home", Stock: 11},
	{ID: "p12", Name: "Bookshelf", Price: 99, Category: "Furniture", Stock: 2},
}

// Fixture returns a fresh copy of the demo catalog.
func Fixture() []models.Product {
	out := make([]models.Product, len(fixture))
	copy(out, fixture)
	return out
}

// StaticSource serves the in-memory fixture. It never fails.
type StaticSource struct{}

func (StaticSource) List(ctx context.Context) ([]models.Product, error) {
	return Fixture(), nil
}
