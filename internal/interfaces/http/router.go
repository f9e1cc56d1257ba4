package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/auth"
	"github.com/bhojansetu/bhojan-setu-api/internal/application/catalog"
	"github.com/bhojansetu/bhojan-setu-api/internal/application/feedback"
	"github.com/bhojansetu/bhojan-setu-api/internal/application/orders"
	"github.com/bhojansetu/bhojan-setu-api/internal/application/products"
	"github.com/bhojansetu/bhojan-setu-api/internal/changefeed"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"
	"github.com/bhojansetu/bhojan-setu-api/internal/infrastructure/storage"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	ProductUC  *products.UseCase
	CatalogUC  *catalog.UseCase
	OrderUC    *orders.UseCase
	FeedbackUC *feedback.UseCase
	Hub        *changefeed.Hub
	ImageStore *storage.ImageStore
	JWTSecret  string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Everything below requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Own profile
	protected.Get("/profiles/me", authHandler.Me)
	protected.Put("/profiles/me", authHandler.UpdateProfile)

	// Catalog (any authenticated role)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/catalog", catalogHandler.List)

	// Change feed (any authenticated role; order events are scoped per principal)
	streamHandler := NewStreamHandler(deps.Hub)
	protected.Get("/stream", streamHandler.Stream)

	// Product feedback reads (any authenticated role)
	feedbackHandler := NewFeedbackHandler(deps.FeedbackUC)
	protected.Get("/products/:id/feedbacks", feedbackHandler.ListByProduct)

	// Supplier listing management
	productHandler := NewProductHandler(deps.ProductUC)
	supplierProducts := protected.Group("/products", RequireRole(entity.RoleSupplier))
	supplierProducts.Post("/", productHandler.Create)
	supplierProducts.Get("/", productHandler.List)
	supplierProducts.Get("/:id", productHandler.GetByID)
	supplierProducts.Put("/:id", productHandler.Update)
	supplierProducts.Delete("/:id", productHandler.Delete)

	// Image uploads (supplier)
	uploadHandler := NewUploadHandler(deps.ImageStore)
	uploads := protected.Group("/uploads", RequireRole(entity.RoleSupplier))
	uploads.Post("/product-image", uploadHandler.ProductImage)

	// Orders
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup := protected.Group("/orders")
	ordersGroup.Post("/", RequireRole(entity.RoleVendor), orderHandler.Place)
	ordersGroup.Get("/", RequireRole(entity.RoleVendor), orderHandler.ListMine)
	ordersGroup.Get("/incoming", RequireRole(entity.RoleSupplier), orderHandler.ListIncoming)
	ordersGroup.Get("/stats", RequireRole(entity.RoleSupplier), orderHandler.Stats)
	ordersGroup.Patch("/:id/status", RequireRole(entity.RoleSupplier), orderHandler.UpdateStatus)

	// Feedback writes (vendor) and the supplier roll-up
	protected.Post("/feedbacks", RequireRole(entity.RoleVendor), feedbackHandler.Create)
	protected.Get("/feedbacks", RequireRole(entity.RoleSupplier), feedbackHandler.ListMine)
}
