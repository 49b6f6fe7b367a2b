package repository

import (
	"context"
	"fmt"

	"textile-store/internal/data/entity"
	"textile-store/pkg/database"

	"go.uber.org/zap"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindByProductID(ctx context.Context, productID int64) ([]*entity.Feedback, error)
}

type feedbackRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFeedbackRepository(db database.PgxIface, log *zap.Logger) FeedbackRepository {
	return &feedbackRepository{
		db:  db,
		log: log.With(zap.String("repository", "feedback")),
	}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedback_tbl (product_id, user_id, feedback_text, feedback_rating, feedback_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING feedback_id
	`

	err := r.db.QueryRow(ctx, query,
		feedback.ProductID,
		feedback.UserID,
		feedback.Text,
		feedback.Rating,
		feedback.Date,
	).Scan(&feedback.ID)

	if err != nil {
		r.log.Error("Failed to create feedback",
			zap.Error(err),
			zap.Int64("product_id", feedback.ProductID),
			zap.String("user_id", feedback.UserID.String()),
		)
		return fmt.Errorf("create feedback for product %d: %w", feedback.ProductID, err)
	}

	return nil
}

func (r *feedbackRepository) FindByProductID(ctx context.Context, productID int64) ([]*entity.Feedback, error) {
	query := `
		SELECT feedback_id, product_id, user_id, feedback_text, feedback_rating, feedback_date
		FROM feedback_tbl
		WHERE product_id = $1
		ORDER BY feedback_date DESC
	`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		r.log.Error("Failed to find feedback by product ID",
			zap.Error(err),
			zap.Int64("product_id", productID),
		)
		return nil, fmt.Errorf("find feedback by product ID %d: %w", productID, err)
	}
	defer rows.Close()

	var feedbacks []*entity.Feedback
	for rows.Next() {
		var feedback entity.Feedback
		err := rows.Scan(
			&feedback.ID,
			&feedback.ProductID,
			&feedback.UserID,
			&feedback.Text,
			&feedback.Rating,
			&feedback.Date,
		)
		if err != nil {
			r.log.Error("Failed to scan feedback row", zap.Error(err))
			return nil, fmt.Errorf("scan feedback row: %w", err)
		}
		feedbacks = append(feedbacks, &feedback)
	}

	return feedbacks, nil
}
