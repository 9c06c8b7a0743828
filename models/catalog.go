package models

// --- Catalog ---

// Product is a single catalog entry. Stock is the only field that changes after load.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
}

// Filters holds the raw filter inputs. Empty values mean "all" and "unbounded".
type Filters struct {
	Category string `json:"category"`
	MaxPrice string `json:"maxPrice"`
}

// --- Cart ---

// CartLine joins a cart entry with its product for display.
type CartLine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}
