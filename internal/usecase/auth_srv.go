package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"textile-store/internal/data/entity"
	"textile-store/internal/data/repository"
	"textile-store/internal/dto/request"
	"textile-store/internal/dto/response"
	"textile-store/pkg/token"
	"textile-store/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
	VerifyEmail(ctx context.Context, tokenString string) error
}

// Mailer is the outbound mail dependency; delivery failures never fail the
// request that triggered them.
type Mailer interface {
	SendVerificationEmail(to, link string) error
	SendResetEmail(to, link string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mail Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// Every registration is a customer; admins are provisioned out of band.
	now := time.Now()
	user := &entity.User{
		ID:             uuid.New(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		CompanyName:    req.CompanyName,
		CompanyAddress: req.CompanyAddress,
		AddressCity:    req.AddressCity,
		AddressState:   req.AddressState,
		AddressCountry: req.AddressCountry,
		Pincode:        req.Pincode,
		GSTNo:          req.GSTNo,
		PasswordHash:   hashedPassword,
		Role:           entity.RoleCustomer,
		EmailVerified:  false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, fmt.Errorf("email already registered")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	go s.sendVerificationLink(user)

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.AuthResponse{
		UserID:     user.ID.String(),
		Name:       user.FirstName,
		Email:      user.Email,
		Role:       user.Role,
		IsVerified: user.EmailVerified,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("Unknown email for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("email not found, please register")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("password does not match")
	}

	ttl := time.Duration(s.config.JWT.SessionExpiryHours) * time.Hour
	sessionToken, err := token.Sign(s.config.JWT.Secret, ttl, token.Claims{
		UserID:  user.ID.String(),
		Name:    user.FirstName,
		Role:    string(user.Role),
		Purpose: token.PurposeSession,
	})
	if err != nil {
		s.log.Error("Failed to sign session token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.AuthResponse{
		UserID:     user.ID.String(),
		Name:       user.FirstName,
		Email:      user.Email,
		Role:       user.Role,
		IsVerified: user.EmailVerified,
		Token:      sessionToken,
		ExpiresAt:  time.Now().Add(ttl),
	}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Forgot password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return fmt.Errorf("email not found")
	}

	ttl := time.Duration(s.config.JWT.ResetExpiryMinutes) * time.Minute
	resetToken, err := token.Sign(s.config.JWT.Secret, ttl, token.Claims{
		UserID:  user.ID.String(),
		Name:    user.FirstName,
		Purpose: token.PurposeReset,
	})
	if err != nil {
		s.log.Error("Failed to sign reset token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to create reset token")
	}

	// Stored on the user row so the token is single use: consumption clears
	// it, a replay no longer matches.
	expiry := time.Now().Add(ttl)
	if err := s.repo.User.SetResetToken(ctx, user.ID, resetToken, expiry); err != nil {
		s.log.Error("Failed to store reset token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to create reset token")
	}

	go func() {
		link := fmt.Sprintf("%s/reset-password?token=%s", s.config.App.PublicURL, resetToken)
		if err := s.mail.SendResetEmail(user.Email, link); err != nil {
			s.log.Error("Failed to send reset email", zap.Error(err), zap.String("email", user.Email))
		}
	}()

	s.log.Info("Password reset requested",
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", expiry))

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reset password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	claims, err := token.Verify(s.config.JWT.Secret, req.Token, token.PurposeReset)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return fmt.Errorf("reset token expired")
		}
		s.log.Warn("Reset token rejected", zap.Error(err))
		return fmt.Errorf("invalid reset token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return fmt.Errorf("invalid reset token")
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("user_id", claims.UserID))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	// The signed token must also match the stored one; a consumed token was
	// cleared and no longer does.
	if user.ResetToken == nil || *user.ResetToken != req.Token {
		return fmt.Errorf("invalid or expired reset token")
	}
	if user.ResetExpiry == nil || user.ResetExpiry.Before(time.Now()) {
		return fmt.Errorf("reset token expired")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}

	if err := s.repo.User.ResetPassword(ctx, user.ID, hashedPassword); err != nil {
		s.log.Error("Failed to reset password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to reset password")
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, tokenString string) error {
	claims, err := token.Verify(s.config.JWT.Secret, tokenString, token.PurposeEmailVerify)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return fmt.Errorf("verification token expired")
		}
		s.log.Warn("Verification token rejected", zap.Error(err))
		return fmt.Errorf("invalid verification token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return fmt.Errorf("invalid verification token")
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user for verification", zap.Error(err), zap.String("user_id", claims.UserID))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	if user.EmailVerified {
		return fmt.Errorf("email already verified")
	}

	if err := s.repo.User.SetEmailVerified(ctx, user.ID); err != nil {
		s.log.Error("Failed to mark email verified", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to verify email")
	}

	s.log.Info("Email verified",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) sendVerificationLink(user *entity.User) {
	ttl := time.Duration(s.config.JWT.VerifyExpiryHours) * time.Hour
	verifyToken, err := token.Sign(s.config.JWT.Secret, ttl, token.Claims{
		UserID:  user.ID.String(),
		Name:    user.FirstName,
		Purpose: token.PurposeEmailVerify,
	})
	if err != nil {
		s.log.Error("Failed to sign verification token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return
	}

	link := fmt.Sprintf("%s/verify-email?token=%s", s.config.App.PublicURL, verifyToken)
	if err := s.mail.SendVerificationEmail(user.Email, link); err != nil {
		s.log.Error("Failed to send verification email", zap.Error(err), zap.String("email", user.Email))
	}
}
