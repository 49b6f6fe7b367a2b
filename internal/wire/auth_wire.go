package wire

import (
	"textile-store/internal/adaptor"
	"textile-store/pkg/middleware"
	"textile-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/forgot-password", authHandler.ForgotPassword)
	r.Post("/reset-password", authHandler.ResetPassword)
	r.Get("/verify-email", authHandler.VerifyEmail)

	// ==================== PROTECTED ROUTES ====================
	// Reports the identity carried by the validated session token.
	r.With(middleware.AuthSession(config, log)).Get("/auth/status", authHandler.Status)

	// Logout requires a valid session so stale cookies get a 401/403
	// instead of silently clearing.
	r.With(middleware.AuthSession(config, log)).Get("/logout", authHandler.Logout)
}
