package usecase

import (
	"textile-store/internal/data/repository"
	"textile-store/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Catalog  CatalogService
	Feedback FeedbackService
	Order    OrderService
}

func NewService(repo *repository.Repository, config *utils.Config, mail Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, mail, log),
		User:     NewUserService(repo, log),
		Catalog:  NewCatalogService(repo, log),
		Feedback: NewFeedbackService(repo, log),
		Order:    NewOrderService(repo, config, log),
	}
}
