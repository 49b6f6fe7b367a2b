package repository

import (
	"textile-store/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Category CategoryRepository
	Product  ProductRepository
	Feedback FeedbackRepository
	Order    OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Product:  NewProductRepository(db, log),
		Feedback: NewFeedbackRepository(db, log),
		Order:    NewOrderRepository(db, log),
	}
}
