package adaptor

import (
	"encoding/json"
	"net/http"

	"textile-store/internal/dto/request"
	"textile-store/internal/usecase"
	"textile-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FeedbackHandler struct {
	service usecase.FeedbackService
	log     *zap.Logger
}

func NewFeedbackHandler(service usecase.FeedbackService, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
		log:     log.With(zap.String("handler", "feedback")),
	}
}

// AddFeedback handles POST /products/{id}/feedback
func (h *FeedbackHandler) AddFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	productID, err := utils.ParseInt64(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product id", nil)
		return
	}

	var req request.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	feedback, err := h.service.AddFeedback(r.Context(), userID, productID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add feedback")
		return
	}

	utils.ResponseCreated(w, "Feedback submitted successfully", feedback)
}

// GetProductFeedback handles GET /products/{id}/feedback
func (h *FeedbackHandler) GetProductFeedback(w http.ResponseWriter, r *http.Request) {
	productID, err := utils.ParseInt64(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product id", nil)
		return
	}

	feedback, err := h.service.GetProductFeedback(r.Context(), productID)
	if err != nil {
		handleServiceError(w, h.log, err, "get product feedback")
		return
	}

	utils.ResponseSuccess(w, "Feedback retrieved successfully", feedback)
}
