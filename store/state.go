package store

import (
	"storefront/models"
)

// State is everything the catalog page knows. Reducers take a State and return the next one
// without modifying the input, so a State handed to a reader stays valid.
type State struct {
	Products     []models.Product
	BaseProducts []models.Product
	Loading      bool
	Error        string
	Filters      models.Filters
	Cart         Counts
	// Pending holds cart units that have not been taken out of stock yet. Pending[id] <= Cart[id].
	Pending Counts
}

const defaultLoadError = "Error loading products"

// Initial is the state before the catalog has been fetched.
func Initial() State {
	return State{Loading: true}
}

func LoadSucceeded(s State, products []models.Product) State {
	s.Products = cloneProducts(products)
	s.BaseProducts = cloneProducts(products)
	s.Loading = false
	s.Error = ""
	return s
}

func LoadFailed(s State, err error) State {
	s.Error = defaultLoadError
	if err != nil && err.Error() != "" {
		s.Error = err.Error()
	}
	s.Loading = false
	return s
}

// FilterChanged merges one filter value. Unknown keys leave the state untouched.
func FilterChanged(s State, key, value string) State {
	switch key {
	case FilterCategory:
		s.Filters.Category = value
	case FilterMaxPrice, "price":
		s.Filters.MaxPrice = value
	}
	return s
}

// Add puts one unit of id in the cart and queues it for reconciliation.
// Unknown products and products with nothing left to promise are ignored.
func Add(s State, id string) State {
	if s.Available(id) <= 0 {
		return s
	}
	s.Cart = s.Cart.With(id, 1)
	s.Pending = s.Pending.With(id, 1)
	return s
}

// Decrement removes one unit of id from the cart. A unit still pending is cancelled;
// otherwise it already left stock and is put back.
func Decrement(s State, id string) State {
	if s.Cart.Get(id) == 0 {
		return s
	}
	s.Cart = s.Cart.With(id, -1)
	if s.Pending.Get(id) > 0 {
		s.Pending = s.Pending.With(id, -1)
	} else {
		s.Products = adjustStock(s.Products, id, 1)
	}
	return s
}

// Reset empties the cart, returning only the units that were already applied to stock.
func Reset(s State) State {
	for _, id := range s.Cart.Keys() {
		if applied := s.Cart.Get(id) - s.Pending.Get(id); applied > 0 {
			s.Products = adjustStock(s.Products, id, applied)
		}
	}
	s.Cart = Counts{}
	s.Pending = Counts{}
	return s
}

// Tick applies the oldest pending unit to stock. The unit is consumed even when the product
// has no stock left or no longer exists, so the queue always drains.
func Tick(s State) State {
	id, ok := s.Pending.First()
	if !ok {
		return s
	}
	if p, found := s.product(id); found && p.Stock > 0 {
		s.Products = adjustStock(s.Products, id, -1)
	}
	s.Pending = s.Pending.With(id, -1)
	return s
}

// Available is the stock that can still be promised to the cart.
func (s State) Available(id string) int {
	p, ok := s.product(id)
	if !ok {
		return 0
	}
	return p.Stock - s.Pending.Get(id)
}

func (s State) product(id string) (models.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func adjustStock(products []models.Product, id string, delta int) []models.Product {
	out := cloneProducts(products)
	for i := range out {
		if out[i].ID == id {
			out[i].Stock += delta
			break
		}
	}
	return out
}

func cloneProducts(products []models.Product) []models.Product {
	if products == nil {
		return nil
	}
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}
