package wire

import (
	"textile-store/internal/adaptor"
	"textile-store/pkg/middleware"
	"textile-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(config, log))

		// GET /profile - View own profile
		r.Get("/profile", userHandler.GetProfile)

		// PUT /updateProfile - Update own profile
		r.Put("/updateProfile", userHandler.UpdateProfile)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/admin/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(config, log))
		r.Use(middleware.Admin(log))

		// GET /admin/users - List all registered users
		r.Get("/", userHandler.GetAllUsers)

		// DELETE /admin/users/{id} - Remove a user account
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
