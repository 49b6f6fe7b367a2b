package usecase

import (
	"context"
	"fmt"
	"time"

	"textile-store/internal/data/entity"
	"textile-store/internal/data/repository"
	"textile-store/internal/dto/request"
	"textile-store/internal/dto/response"
	"textile-store/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FeedbackService interface {
	AddFeedback(ctx context.Context, userID uuid.UUID, productID int64, req *request.FeedbackRequest) (*response.FeedbackResponse, error)
	GetProductFeedback(ctx context.Context, productID int64) ([]response.FeedbackResponse, error)
}

type feedbackService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFeedbackService(repo *repository.Repository, log *zap.Logger) FeedbackService {
	return &feedbackService{
		repo: repo,
		log:  log.With(zap.String("service", "feedback")),
	}
}

func (s *feedbackService) AddFeedback(ctx context.Context, userID uuid.UUID, productID int64, req *request.FeedbackRequest) (*response.FeedbackResponse, error) {
	// Rating range is checked here, before any write.
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Feedback validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to check product", zap.Error(err), zap.Int64("product_id", productID))
		return nil, fmt.Errorf("failed to check product")
	}
	if product == nil {
		return nil, fmt.Errorf("product %d not found", productID)
	}

	feedback := &entity.Feedback{
		ProductID: productID,
		UserID:    userID,
		Text:      req.Text,
		Rating:    req.Rating,
		Date:      time.Now(),
	}

	if err := s.repo.Feedback.Create(ctx, feedback); err != nil {
		s.log.Error("Failed to create feedback",
			zap.Error(err),
			zap.Int64("product_id", productID),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("failed to submit feedback")
	}

	s.log.Info("Feedback submitted",
		zap.Int64("feedback_id", feedback.ID),
		zap.Int64("product_id", productID),
		zap.Int("rating", req.Rating))

	resp := response.FeedbackToResponse(feedback)
	return &resp, nil
}

func (s *feedbackService) GetProductFeedback(ctx context.Context, productID int64) ([]response.FeedbackResponse, error) {
	feedbacks, err := s.repo.Feedback.FindByProductID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to get feedback", zap.Error(err), zap.Int64("product_id", productID))
		return nil, fmt.Errorf("failed to get feedback")
	}

	responses := make([]response.FeedbackResponse, len(feedbacks))
	for i, feedback := range feedbacks {
		responses[i] = response.FeedbackToResponse(feedback)
	}

	return responses, nil
}
