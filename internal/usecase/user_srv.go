package usecase

import (
	"context"
	"fmt"
	"time"

	"textile-store/internal/data/repository"
	"textile-store/internal/dto/request"
	"textile-store/internal/dto/response"
	"textile-store/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)

	// Admin endpoints
	GetAllUsers(ctx context.Context) ([]response.ProfileResponse, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get profile")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	profile := response.UserToProfile(user)
	return &profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	// Profile fields only; email, role and credentials are not client-settable here.
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.PhoneNumber = req.PhoneNumber
	user.CompanyName = req.CompanyName
	user.CompanyAddress = req.CompanyAddress
	user.AddressCity = req.AddressCity
	user.AddressState = req.AddressState
	user.AddressCountry = req.AddressCountry
	user.Pincode = req.Pincode
	user.GSTNo = req.GSTNo
	user.UpdatedAt = time.Now()

	if err := s.repo.User.UpdateProfile(ctx, user); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update profile")
	}

	s.log.Info("Profile updated", zap.String("user_id", userID.String()))

	profile := response.UserToProfile(user)
	return &profile, nil
}

// ==================== ADMIN METHODS ====================

func (s *userService) GetAllUsers(ctx context.Context) ([]response.ProfileResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users")
	}

	profiles := make([]response.ProfileResponse, len(users))
	for i, user := range users {
		profiles[i] = response.UserToProfile(user)
	}

	s.log.Info("Users listed", zap.Int("count", len(profiles)))
	return profiles, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	if err := s.repo.User.Delete(ctx, userID); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("failed to delete user")
	}

	return nil
}
