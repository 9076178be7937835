package middleware

import (
	"net/http"
	"strings"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/data/repository"
	"turf-booking/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the bearer session token and loads the caller's
// identity into the request context.
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			// The session carries role and assigned facility, so the role
			// guards below need no extra lookup.
			ctx := utils.SetUserContext(r.Context(), session.UserID, string(session.Role), session.ManagedFacilityID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin allows only callers whose session carries the admin role.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return requireRole(entity.RoleAdmin, "Admin access required", logger)
}

// Manager allows only callers whose session carries the manager role.
func Manager(logger *zap.Logger) func(http.Handler) http.Handler {
	return requireRole(entity.RoleManager, "Manager access required", logger)
}

func requireRole(role entity.UserRole, denied string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if got != string(role) {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Role check: access denied",
					zap.String("user_id", userID),
					zap.String("required", string(role)),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, denied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
