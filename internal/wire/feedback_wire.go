package wire

import (
	"textile-store/internal/adaptor"
	"textile-store/pkg/middleware"
	"textile-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFeedback(
	r chi.Router,
	feedbackHandler *adaptor.FeedbackHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /products/{id}/feedback - Read feedback for a product
	r.Get("/products/{id}/feedback", feedbackHandler.GetProductFeedback)

	// ==================== PROTECTED ROUTES ====================
	// POST /products/{id}/feedback - Submit feedback (authenticated users only)
	r.With(middleware.AuthSession(config, log)).Post("/products/{id}/feedback", feedbackHandler.AddFeedback)
}
