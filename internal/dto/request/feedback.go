package request

type FeedbackRequest struct {
	Text   string `json:"feedback_text" validate:"required,max=1000"`
	Rating int    `json:"feedback_rating" validate:"required,min=1,max=5"`
}
