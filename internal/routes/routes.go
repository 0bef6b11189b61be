package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/geprek/internal/handlers"
	"github.com/example/geprek/internal/middleware"
)

// Handlers groups every HTTP handler the API serves.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Product      *handlers.ProductHandler
	Order        *handlers.OrderHandler
	User         *handlers.UserHandler
	StoreProfile *handlers.StoreProfileHandler
	Cart         *handlers.CartHandler
	Admin        *handlers.AdminHandler
	Health       *handlers.HealthHandler
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, h Handlers, jwtSecret string) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	auth := middleware.AuthMiddleware(jwtSecret)
	admin := middleware.RequireAdmin()

	api := app.Group("/api")
	api.Get("/health", h.Health.Health)

	// Auth routes
	api.Post("/auth/register", h.Auth.Register)
	api.Post("/auth/login", h.Auth.Login)

	// Products: public reads, admin writes
	h.Product.RegisterProductRoutes(api.Group("/products"), auth, admin)

	// Store profile
	api.Get("/store-profile", h.StoreProfile.GetStoreProfile)
	api.Post("/store-profile", auth, admin, h.StoreProfile.SaveStoreProfile)

	// Orders
	api.Get("/orders", auth, h.Order.ListOrders)
	api.Post("/orders", auth, h.Order.CreateOrder)
	api.Get("/orders/:id", auth, h.Order.GetOrder)
	api.Put("/orders/:id", auth, admin, h.Order.UpdateStatus)
	api.Get("/orders/:id/receipt", auth, h.Order.Receipt)

	// Users
	api.Get("/profile", auth, h.User.GetProfile)
	api.Get("/users", auth, admin, h.User.ListUsers)
	api.Get("/users/:id", auth, h.User.GetUser)
	api.Put("/users/:id", auth, h.User.UpdateUser)
	api.Delete("/users/:id", auth, admin, h.User.DeleteUser)

	// Cart
	api.Get("/cart", auth, h.Cart.GetCart)
	api.Delete("/cart", auth, h.Cart.ClearCart)
	api.Post("/cart/items", auth, h.Cart.AddItem)
	api.Put("/cart/items/:productId", auth, h.Cart.UpdateItem)
	api.Delete("/cart/items/:productId", auth, h.Cart.RemoveItem)
	api.Post("/cart/checkout", auth, h.Cart.Checkout)

	// Admin dashboard
	api.Get("/admin/stats", auth, admin, h.Admin.DashboardStats)
	api.Get("/admin/orders/recent", auth, admin, h.Admin.RecentOrders)
	api.Get("/admin/orders/export", auth, admin, h.Admin.ExportOrders)
}
