package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"

	"storefront/models"
)

// Connect sets up the database connection pool and checks that it answers.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	db, err := pgxpool.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	zap.L().Info("connected to the database")
	return db, nil
}

// Close closes the database connection pool.
func Close(db *pgxpool.Pool) {
	if db != nil {
		db.Close()
		zap.L().Info("database connection pool closed")
	}
}

// EnsureSchema creates the products table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id       TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			name     TEXT NOT NULL,
			price    DOUBLE PRECISION NOT NULL CHECK (price >= 0),
			category TEXT NOT NULL,
			stock    INTEGER NOT NULL CHECK (stock >= 0)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}
	return nil
}

// Seed upserts the given products in one batch, keeping their order as the listing order.
func Seed(ctx context.Context, db *pgxpool.Pool, products []models.Product) error {
	query := `
		INSERT INTO products (id, position, name, price, category, stock)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET position = EXCLUDED.position, name = EXCLUDED.name, price = EXCLUDED.price,
		    category = EXCLUDED.category, stock = EXCLUDED.stock
	`

	batch := &pgx.Batch{}
	for i, p := range products {
		batch.Queue(query, p.ID, i, p.Name, p.Price, p.Category, p.Stock)
	}

	results := db.SendBatch(ctx, batch)
	defer results.Close()
	for _, p := range products {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}

	zap.L().Info("seeded products table", zap.Int("count", len(products)))
	return nil
}
