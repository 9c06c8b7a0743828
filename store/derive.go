package store

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/models"
)

// Filter keys accepted by FilterChanged.
const (
	FilterCategory = "category"
	FilterMaxPrice = "maxPrice"
)

// Categories returns the distinct categories of products in ascending order.
func Categories(products []models.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// ParseMaxPrice reads the max price input. Empty or non-numeric text means no limit.
func ParseMaxPrice(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return math.Inf(1)
	}
	return v
}

// Filtered keeps the products matching both the category and the max price filter.
func Filtered(products []models.Product, f models.Filters) []models.Product {
	limit := ParseMaxPrice(f.MaxPrice)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if p.Price > limit {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Totals summarises the cart against the current products.
type Totals struct {
	Lines     []models.CartLine
	ItemCount int
	Total     decimal.Decimal
}

// CartTotals joins cart entries with their products in cart order.
// Entries whose product cannot be found are skipped.
func CartTotals(products []models.Product, cart Counts) Totals {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	t := Totals{Lines: make([]models.CartLine, 0, cart.Len()), Total: decimal.Zero}
	for _, id := range cart.Keys() {
		p, ok := byID[id]
		if !ok {
			continue
		}
		qty := cart.Get(id)
		t.ItemCount += qty
		t.Total = t.Total.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(qty))))
		t.Lines = append(t.Lines, models.CartLine{ID: id, Name: p.Name, Price: p.Price, Qty: qty})
	}
	return t
}
