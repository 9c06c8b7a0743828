package handlers

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"storefront/store"
	"storefront/views"
)

type UpdateFiltersRequest struct {
	Category *string `json:"category" form:"category"`
	MaxPrice *string `json:"maxPrice" form:"maxPrice"`
}

// unavailable answers when the container has been closed or the request was cancelled.
func unavailable(c *fiber.Ctx, err error) error {
	zap.L().Warn("catalog container unavailable", zap.Error(err))
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "message": "Catalog is not available."})
}

// respond sends the view to JSON clients and sends browsers back to the page.
func respond(c *fiber.Ctx, v store.View) error {
	if strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON) {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "data": v})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleCatalogPage renders the storefront page, starting the catalog load on first visit.
// GET /
func HandleCatalogPage(container *store.Container, renderer *views.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := container.Activate(c.UserContext())
		if err != nil {
			return unavailable(c, err)
		}

		var buf bytes.Buffer
		if err := renderer.Page(&buf, views.PageFromView(v)); err != nil {
			zap.L().Error("error rendering catalog page", zap.Error(err))
			return fiber.ErrInternalServerError
		}

		c.Type("html", "utf-8")
		return c.Send(buf.Bytes())
	}
}

// HandleGetCatalog returns the container view as JSON.
// GET /api/catalog
func HandleGetCatalog(container *store.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := container.Activate(c.UserContext())
		if err != nil {
			return unavailable(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "data": v})
	}
}

// HandleUpdateFilters merges the submitted filter values. Fields left out keep their value.
// POST /filters
func HandleUpdateFilters(container *store.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req UpdateFiltersRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body."})
		}

		ctx := c.UserContext()
		v, err := container.Snapshot(ctx)
		if req.Category != nil && err == nil {
			v, err = container.UpdateFilter(ctx, store.FilterCategory, *req.Category)
		}
		if req.MaxPrice != nil && err == nil {
			v, err = container.UpdateFilter(ctx, store.FilterMaxPrice, strings.TrimSpace(*req.MaxPrice))
		}
		if err != nil {
			return unavailable(c, err)
		}
		return respond(c, v)
	}
}

// HandleAddToCart adds one unit of a product. Unknown or sold out products are ignored.
// POST /cart/:productId/add
func HandleAddToCart(container *store.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID := c.Params("productId")
		v, err := container.AddToCart(c.UserContext(), productID)
		if err != nil {
			return unavailable(c, err)
		}
		zap.L().Debug("add to cart", zap.String("product_id", productID), zap.Int("item_count", v.ItemCount))
		return respond(c, v)
	}
}

// HandleDecrementCart removes one unit of a product from the cart.
// POST /cart/:productId/decrement
func HandleDecrementCart(container *store.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID := c.Params("productId")
		v, err := container.Decrement(c.UserContext(), productID)
		if err != nil {
			return unavailable(c, err)
		}
		zap.L().Debug("decrement cart", zap.String("product_id", productID), zap.Int("item_count", v.ItemCount))
		return respond(c, v)
	}
}

// HandleResetCart empties the cart.
// POST /cart/reset
func HandleResetCart(container *store.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := container.Reset(c.UserContext())
		if err != nil {
			return unavailable(c, err)
		}
		return respond(c, v)
	}
}

// HandleHealth reports that the server is up.
// GET /healthz
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "success"})
}
