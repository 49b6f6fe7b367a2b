package response

import (
	"time"

	"textile-store/internal/data/entity"
)

type FeedbackResponse struct {
	ID        int64     `json:"feedback_id"`
	ProductID int64     `json:"product_id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"feedback_text"`
	Rating    int       `json:"feedback_rating"`
	Date      time.Time `json:"feedback_date"`
}

func FeedbackToResponse(f *entity.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        f.ID,
		ProductID: f.ProductID,
		UserID:    f.UserID.String(),
		Text:      f.Text,
		Rating:    f.Rating,
		Date:      f.Date,
	}
}
