package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/catalog"
	"storefront/handlers"
	"storefront/middleware"
	"storefront/store"
	"storefront/views"
)

// Deps are the collaborators the routes are wired to.
type Deps struct {
	Source    catalog.Source
	Container *store.Container
	Renderer  *views.Renderer
	Logger    *zap.Logger
}

// NewApp builds the fiber app with its middleware and routes.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "storefront",
		ErrorHandler:          middleware.ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New())
	if deps.Logger != nil {
		app.Use(middleware.RequestLogger(deps.Logger))
	}

	SetupRoutes(app, deps)
	return app
}

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, deps Deps) {
	app.Get("/healthz", handlers.HandleHealth)

	// --- Storefront page ---
	app.Get("/", handlers.HandleCatalogPage(deps.Container, deps.Renderer))
	app.Post("/filters", handlers.HandleUpdateFilters(deps.Container))

	cart := app.Group("/cart")
	cart.Post("/reset", handlers.HandleResetCart(deps.Container))
	cart.Post("/:productId/add", handlers.HandleAddToCart(deps.Container))
	cart.Post("/:productId/decrement", handlers.HandleDecrementCart(deps.Container))

	// --- API ---
	api := app.Group("/api")
	api.Get("/products", handlers.HandleGetProducts(deps.Source))
	api.Get("/catalog", handlers.HandleGetCatalog(deps.Container))
}
