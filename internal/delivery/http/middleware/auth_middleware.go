package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/pkg/response"

	"clinic-management-api/pkg/jwt"

	"gorm.io/gorm"
)

type contextKey string

const AuthUserKey contextKey = "auth_user"

type AuthMiddleware struct {
	db         *gorm.DB
	jwtService *jwt.JWTService
	userRepo   repository.UserRepository
}

func NewAuthMiddleware(db *gorm.DB, jwtService *jwt.JWTService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		db:         db,
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// Authenticate resolves the bearer token to a live account. Tokens are not
// proactively revoked, so the existence check against the store is the only
// revocation mechanism for accounts deleted after issuance.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		user, err := m.userRepo.FindByID(m.db.WithContext(r.Context()), claims.UserID)
		if err != nil {
			response.InternalServerError(w, "Failed to resolve account")
			return
		}
		if user == nil {
			response.Unauthorized(w, "User no longer exists")
			return
		}

		ctx := context.WithValue(r.Context(), AuthUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext extracts the authenticated account from context
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(AuthUserKey).(*entity.User)
	return user, ok
}
