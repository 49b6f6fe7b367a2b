package middleware

import (
	"net/http"

	"textile-store/internal/data/entity"
	"textile-store/pkg/token"
	"textile-store/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionCookie is the cookie the login handler sets and the gate reads.
const SessionCookie = "token"

// AuthSession validates the session cookie and attaches identity to the
// request context. A missing cookie and a rejected token are two distinct
// outcomes: 401 vs 403.
func AuthSession(config *utils.Config, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				utils.ResponseUnauthorized(w, "You are not authenticated")
				return
			}

			claims, err := token.Verify(config.JWT.Secret, cookie.Value, token.PurposeSession)
			if err != nil {
				logger.Warn("Session token rejected",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseForbidden(w, "Token is not correct")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				logger.Warn("Session token carries malformed user id",
					zap.String("user_id", claims.UserID))
				utils.ResponseForbidden(w, "Token is not correct")
				return
			}

			if !entity.ValidRole(entity.UserRole(claims.Role)) {
				logger.Warn("Session token carries unknown role",
					zap.String("user_id", claims.UserID),
					zap.String("role", claims.Role))
				utils.ResponseForbidden(w, "Token is not correct")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, claims.Name, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin requires the role claim set by AuthSession to be admin. The token
// itself was already accepted; this is the stricter privilege check.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if entity.UserRole(role) != entity.RoleAdmin {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
