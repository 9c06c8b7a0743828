package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"storefront/catalog"
)

// HandleGetProducts serves the full catalog as a plain JSON array.
// GET /api/products
func HandleGetProducts(src catalog.Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := src.List(c.UserContext())
		if err != nil {
			zap.L().Error("error listing products", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve products."})
		}
		return c.Status(fiber.StatusOK).JSON(products)
	}
}
