package wire

import (
	"textile-store/internal/adaptor"
	"textile-store/pkg/middleware"
	"textile-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Catalog reads are open to everyone, browsing needs no account.
	r.Get("/categories", catalogHandler.GetCategories)
	r.Get("/products", catalogHandler.GetProducts)
	r.Get("/products/{id}", catalogHandler.GetProductByID)

	// ==================== ADMIN ROUTES ====================
	// Catalog writes require authentication AND the admin role.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(config, log))
		r.Use(middleware.Admin(log))

		r.Post("/categories", catalogHandler.CreateCategory)
		r.Put("/categories/{id}", catalogHandler.UpdateCategory)
		r.Delete("/categories/{id}", catalogHandler.DeleteCategory)

		r.Post("/products", catalogHandler.CreateProduct)
		r.Put("/products/{id}", catalogHandler.UpdateProduct)
		r.Delete("/products/{id}", catalogHandler.DeleteProduct)
	})
}
