package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/shopspring/decimal"

	"storefront/models"
	"storefront/store"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Status variants understood by StatusProps.
const (
	StatusLoading = "loading"
	StatusError   = "error"
	StatusEmpty   = "empty"
)

type statusVariant struct {
	title string
	note  string
}

var statusVariants = map[string]statusVariant{
	StatusLoading: {"Loading products…", "Fetching the latest inventory."},
	StatusError:   {"Something went wrong", "Please refresh and try again."},
	StatusEmpty:   {"No products match your filters", "Try changing filters."},
}

// StatusProps drives the status message. Unknown states render as empty.
type StatusProps struct {
	State   string
	Message string
}

func (p StatusProps) variant() statusVariant {
	if v, ok := statusVariants[p.State]; ok {
		return v
	}
	return statusVariants[StatusEmpty]
}

func (p StatusProps) Title() string {
	return p.variant().title
}

// Note is the message when one is given, else the variant's default hint.
func (p StatusProps) Note() string {
	if p.Message != "" {
		return p.Message
	}
	return p.variant().note
}

type ProductListProps struct {
	Products []store.ProductView
}

type CategoryFilterProps struct {
	Categories []string
	Value      string
}

type PriceFilterProps struct {
	Value string
}

type CartSummaryProps struct {
	Lines     []models.CartLine
	ItemCount int
	Total     decimal.Decimal
}

func (p CartSummaryProps) HasItems() bool {
	return p.ItemCount > 0
}

// PageProps composes the whole catalog page. When Status is set only the status is shown.
type PageProps struct {
	Title    string
	Status   *StatusProps
	Refresh  bool
	Category CategoryFilterProps
	Price    PriceFilterProps
	Cart     CartSummaryProps
	List     ProductListProps
	Empty    *StatusProps
}

// PageFromView maps a container snapshot to page props.
func PageFromView(v store.View) PageProps {
	p := PageProps{
		Title:    "Mini-Storefront",
		Refresh:  v.Loading || len(v.Pending) > 0,
		Category: CategoryFilterProps{Categories: v.Categories, Value: v.Filters.Category},
		Price:    PriceFilterProps{Value: v.Filters.MaxPrice},
		Cart:     CartSummaryProps{Lines: v.Lines, ItemCount: v.ItemCount, Total: v.Total},
		List:     ProductListProps{Products: v.Products},
	}

	switch {
	case v.Loading:
		p.Status = &StatusProps{State: StatusLoading}
	case v.Error != "":
		p.Status = &StatusProps{State: StatusError, Message: v.Error}
	case len(v.Products) == 0:
		p.Empty = &StatusProps{State: StatusEmpty}
	}
	return p
}

// Renderer executes the parsed component templates.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates once so each render only executes them.
func New() (*Renderer, error) {
	tmpl, err := template.New("views").Funcs(template.FuncMap{
		"price":     formatPrice,
		"money":     formatMoney,
		"lineTotal": lineTotal,
	}).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Page(w io.Writer, p PageProps) error {
	return r.templates.ExecuteTemplate(w, "page", p)
}

func (r *Renderer) StatusMessage(w io.Writer, p StatusProps) error {
	return r.templates.ExecuteTemplate(w, "status", p)
}

func (r *Renderer) ProductList(w io.Writer, p ProductListProps) error {
	return r.templates.ExecuteTemplate(w, "product_list", p)
}

func (r *Renderer) ProductCard(w io.Writer, p store.ProductView) error {
	return r.templates.ExecuteTemplate(w, "product_card", p)
}

func (r *Renderer) CategoryFilter(w io.Writer, p CategoryFilterProps) error {
	return r.templates.ExecuteTemplate(w, "category_filter", p)
}

func (r *Renderer) PriceFilter(w io.Writer, p PriceFilterProps) error {
	return r.templates.ExecuteTemplate(w, "price_filter", p)
}

func (r *Renderer) CartSummary(w io.Writer, p CartSummaryProps) error {
	return r.templates.ExecuteTemplate(w, "cart_summary", p)
}

func formatPrice(v float64) string {
	return decimal.NewFromFloat(v).String()
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func lineTotal(price float64, qty int) string {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(qty))).StringFixed(2)
}
