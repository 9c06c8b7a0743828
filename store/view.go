package store

import (
	"github.com/shopspring/decimal"

	"storefront/models"
)

// ProductView is a product as shown on a card, with the units still available to add.
type ProductView struct {
	models.Product
	Available int `json:"available"`
}

// View is a read-only snapshot of the container, with everything derived that the page needs.
type View struct {
	Loading     bool              `json:"loading"`
	Error       string            `json:"error,omitempty"`
	Filters     models.Filters    `json:"filters"`
	Categories  []string          `json:"categories"`
	Products    []ProductView     `json:"products"`
	Lines       []models.CartLine `json:"lines"`
	ItemCount   int               `json:"itemCount"`
	Total       decimal.Decimal   `json:"total"`
	Cart        map[string]int    `json:"cart"`
	Pending     map[string]int    `json:"pending"`
	Reconciling bool              `json:"reconciling"`
}

// BuildView derives a View from s. reconciling reports whether the stock timer is running.
func BuildView(s State, reconciling bool) View {
	filtered := Filtered(s.Products, s.Filters)
	products := make([]ProductView, 0, len(filtered))
	for _, p := range filtered {
		products = append(products, ProductView{Product: p, Available: s.Available(p.ID)})
	}

	totals := CartTotals(s.Products, s.Cart)
	return View{
		Loading:     s.Loading,
		Error:       s.Error,
		Filters:     s.Filters,
		Categories:  Categories(s.BaseProducts),
		Products:    products,
		Lines:       totals.Lines,
		ItemCount:   totals.ItemCount,
		Total:       totals.Total,
		Cart:        s.Cart.Map(),
		Pending:     s.Pending.Map(),
		Reconciling: reconciling,
	}
}

// Stock returns the stock of id among the visible products.
func (v View) Stock(id string) (int, bool) {
	for _, p := range v.Products {
		if p.ID == id {
			return p.Stock, true
		}
	}
	return 0, false
}
