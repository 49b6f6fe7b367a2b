package usecase

import (
	"context"
	"testing"
	"time"

	"textile-store/internal/data/entity"
	"textile-store/internal/dto/request"
	"textile-store/pkg/token"
	"textile-store/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *stubMailer, *utils.Config) {
	t.Helper()
	users := newFakeUserRepo()
	mail := newStubMailer()
	cfg := testConfig()
	repo := testRepository(users, newFakeProductRepo(), newFakeOrderRepo())
	return NewAuthService(repo, cfg, mail, zap.NewNop()), users, mail, cfg
}

func validRegisterRequest() *request.RegisterRequest {
	return &request.RegisterRequest{
		FirstName:      "Asha",
		LastName:       "Patel",
		Email:          "asha@mill.example",
		PhoneNumber:    "9876543210",
		CompanyName:    "Patel Textiles",
		CompanyAddress: "14 Loom Street",
		AddressCity:    "Surat",
		AddressState:   "Gujarat",
		AddressCountry: "India",
		Pincode:        "395003",
		Password:       "warp-weft-9",
	}
}

func TestRegister(t *testing.T) {
	svc, users, mail, _ := newAuthFixture(t)

	resp, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Asha", resp.Name)
	assert.Equal(t, entity.RoleCustomer, resp.Role)
	assert.False(t, resp.IsVerified)
	assert.Empty(t, resp.Token, "registration must not open a session")

	stored, err := users.FindByEmail(context.Background(), "asha@mill.example")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "warp-weft-9", stored.PasswordHash, "password must be hashed")
	assert.Equal(t, entity.RoleCustomer, stored.Role)

	select {
	case link := <-mail.verifyLinks:
		assert.Contains(t, link, "/verify-email?token=")
	case <-time.After(2 * time.Second):
		t.Fatal("verification email never sent")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegisterRequest())
	require.Error(t, err)
	assert.EqualError(t, err, "email already registered")
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	req := validRegisterRequest()
	req.Email = "not-an-email"
	req.Password = "short"

	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLogin(t *testing.T) {
	svc, _, _, cfg := newAuthFixture(t)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "asha@mill.example",
		Password: "warp-weft-9",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), resp.ExpiresAt, time.Minute)

	claims, err := token.Verify(cfg.JWT.Secret, resp.Token, token.PurposeSession)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID)
	assert.Equal(t, "Asha", claims.Name)
	assert.Equal(t, "customer", claims.Role)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@mill.example",
		Password: "whatever-1",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "email not found, please register")
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "asha@mill.example",
		Password: "wrong-pass",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "password does not match")
}

func TestPasswordResetFlow(t *testing.T) {
	svc, users, mail, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(context.Background(), &request.ForgotPasswordRequest{
		Email: "asha@mill.example",
	}))

	select {
	case link := <-mail.resetLinks:
		assert.Contains(t, link, "/reset-password?token=")
	case <-time.After(2 * time.Second):
		t.Fatal("reset email never sent")
	}

	stored, err := users.FindByEmail(context.Background(), "asha@mill.example")
	require.NoError(t, err)
	require.NotNil(t, stored.ResetToken)
	resetToken := *stored.ResetToken

	require.NoError(t, svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Token:    resetToken,
		Password: "new-pass-77",
	}))

	// Old password rejected, new one accepted.
	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "asha@mill.example",
		Password: "warp-weft-9",
	})
	require.Error(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "asha@mill.example",
		Password: "new-pass-77",
	})
	require.NoError(t, err)

	// The token was consumed; a replay no longer matches the stored one.
	err = svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Token:    resetToken,
		Password: "another-pass-1",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "invalid or expired reset token")
}

func TestResetPasswordExpiredToken(t *testing.T) {
	svc, users, _, cfg := newAuthFixture(t)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	stored, err := users.FindByEmail(context.Background(), "asha@mill.example")
	require.NoError(t, err)

	expiredToken, err := token.Sign(cfg.JWT.Secret, -time.Minute, token.Claims{
		UserID:  stored.ID.String(),
		Purpose: token.PurposeReset,
	})
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Token:    expiredToken,
		Password: "new-pass-77",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "reset token expired")
}

func TestResetPasswordBackdatedStoredExpiry(t *testing.T) {
	svc, users, mail, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(context.Background(), &request.ForgotPasswordRequest{
		Email: "asha@mill.example",
	}))

	select {
	case <-mail.resetLinks:
	case <-time.After(2 * time.Second):
		t.Fatal("reset email never sent")
	}

	stored, err := users.FindByEmail(context.Background(), "asha@mill.example")
	require.NoError(t, err)
	require.NotNil(t, stored.ResetToken)

	// Signature still valid, row says the window already closed.
	require.NoError(t, users.SetResetToken(context.Background(), stored.ID, *stored.ResetToken, time.Now().Add(-time.Minute)))

	err = svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Token:    *stored.ResetToken,
		Password: "new-pass-77",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "reset token expired")
}

func TestResetPasswordRejectsSessionToken(t *testing.T) {
	svc, users, _, cfg := newAuthFixture(t)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	stored, err := users.FindByEmail(context.Background(), "asha@mill.example")
	require.NoError(t, err)

	sessionToken, err := token.Sign(cfg.JWT.Secret, time.Hour, token.Claims{
		UserID:  stored.ID.String(),
		Purpose: token.PurposeSession,
	})
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Token:    sessionToken,
		Password: "new-pass-77",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "invalid reset token")
}

func TestVerifyEmail(t *testing.T) {
	svc, users, mail, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	var link string
	select {
	case link = <-mail.verifyLinks:
	case <-time.After(2 * time.Second):
		t.Fatal("verification email never sent")
	}

	verifyToken := link[len("http://localhost:3000/verify-email?token="):]
	require.NoError(t, svc.VerifyEmail(context.Background(), verifyToken))

	stored, err := users.FindByEmail(context.Background(), "asha@mill.example")
	require.NoError(t, err)
	assert.True(t, stored.EmailVerified)

	// Second use reports the conflict.
	err = svc.VerifyEmail(context.Background(), verifyToken)
	require.Error(t, err)
	assert.EqualError(t, err, "email already verified")
}
