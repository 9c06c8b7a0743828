package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"storefront/models"
)

// PostgresSource reads the catalog from the products table.
type PostgresSource struct {
	DB *pgxpool.Pool
}

// NewPostgresSource wraps an open pool.
func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{DB: db}
}

func (s *PostgresSource) List(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, name, price, category, stock
		FROM products
		ORDER BY position ASC
	`

	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Stock); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return products, nil
}
