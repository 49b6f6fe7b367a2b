package entity

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	ID        int64     `db:"feedback_id"`
	ProductID int64     `db:"product_id"`
	UserID    uuid.UUID `db:"user_id"`
	Text      string    `db:"feedback_text"`
	Rating    int       `db:"feedback_rating"`
	Date      time.Time `db:"feedback_date"`
}
