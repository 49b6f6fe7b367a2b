package wire

import (
	"textile-store/internal/adaptor"
	"textile-store/pkg/middleware"
	"textile-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(config, log))

		// POST /place-order - Place a new order with specifications
		r.Post("/place-order", orderHandler.PlaceOrder)

		// GET /orders - View own order history
		r.Get("/orders", orderHandler.GetUserOrders)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(config, log))
		r.Use(middleware.Admin(log))

		// GET /admin/orders - List every order with specifications
		r.Get("/admin/orders", orderHandler.GetAllOrders)

		// PUT /orders/{id}/status - Move an order through its lifecycle
		r.Put("/orders/{id}/status", orderHandler.UpdateOrderStatus)

		// DELETE /orders/{id} - Remove an order and its line items
		r.Delete("/orders/{id}", orderHandler.DeleteOrder)

		// GET /admin/dashboard - Aggregate store counters
		r.Get("/admin/dashboard", orderHandler.GetDashboard)
	})
}
