package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"textile-store/pkg/token"
	"textile-store/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{Secret: "middleware-test-secret"},
	}
}

func sessionToken(t *testing.T, cfg *utils.Config, role string) (uuid.UUID, string) {
	t.Helper()
	userID := uuid.New()
	signed, err := token.Sign(cfg.JWT.Secret, time.Hour, token.Claims{
		UserID:  userID.String(),
		Name:    "Asha",
		Role:    role,
		Purpose: token.PurposeSession,
	})
	if err != nil {
		t.Fatalf("sign session token: %v", err)
	}
	return userID, signed
}

func okHandler(t *testing.T, wantUserID uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			t.Error("user id missing from context")
		}
		if gotID != wantUserID {
			t.Errorf("context user id = %s, want %s", gotID, wantUserID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthSessionNoCookie(t *testing.T) {
	cfg := testConfig()
	handler := AuthSession(cfg, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without a cookie")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "You are not authenticated") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestAuthSessionBadToken(t *testing.T) {
	cfg := testConfig()
	handler := AuthSession(cfg, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with a garbage token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not.a.jwt"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Token is not correct") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestAuthSessionRejectsResetToken(t *testing.T) {
	cfg := testConfig()
	signed, err := token.Sign(cfg.JWT.Secret, time.Hour, token.Claims{
		UserID:  uuid.New().String(),
		Purpose: token.PurposeReset,
	})
	if err != nil {
		t.Fatalf("sign reset token: %v", err)
	}

	handler := AuthSession(cfg, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("reset token accepted as session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signed})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestAuthSessionRejectsUnknownRole(t *testing.T) {
	cfg := testConfig()
	_, signed := sessionToken(t, cfg, "superuser")

	handler := AuthSession(cfg, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("token with unknown role accepted")
	}))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signed})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestAuthSessionValid(t *testing.T) {
	cfg := testConfig()
	userID, signed := sessionToken(t, cfg, "customer")

	handler := AuthSession(cfg, zap.NewNop())(okHandler(t, userID))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signed})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAdminRejectsCustomer(t *testing.T) {
	cfg := testConfig()
	_, signed := sessionToken(t, cfg, "customer")

	handler := AuthSession(cfg, zap.NewNop())(Admin(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("customer reached an admin route")
	})))

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signed})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Admin access required") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestAdminAllowsAdmin(t *testing.T) {
	cfg := testConfig()
	userID, signed := sessionToken(t, cfg, "admin")

	handler := AuthSession(cfg, zap.NewNop())(Admin(zap.NewNop())(okHandler(t, userID)))

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signed})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAdminWithoutSessionContext(t *testing.T) {
	handler := Admin(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without identity")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
