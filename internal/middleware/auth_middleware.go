package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers
const (
	ContextUserID   = "userID"
	ContextUserCode = "userCode"
	ContextUserRole = "userRole"
)

// JWTAuth validates the bearer token and stores the caller's identity in
// the request context. Requests without a valid token are rejected.
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := auth.ExtractBearerToken(ctx.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(ctx, "Authorization header is missing or malformed")
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(ctx, "Token has expired")
				return
			}
			abortUnauthorized(ctx, "Invalid token")
			return
		}

		ctx.Set(ContextUserID, claims.UserID)
		ctx.Set(ContextUserCode, claims.Code)
		ctx.Set(ContextUserRole, claims.Role)
		ctx.Next()
	}
}

// RoleRequired allows the request through only when the authenticated
// caller holds one of the given roles. Must run after JWTAuth.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(ContextUserRole)
		if !exists {
			abortUnauthorized(ctx, "Authentication required")
			return
		}
		role, ok := value.(models.Role)
		if !ok {
			abortUnauthorized(ctx, "Authentication required")
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusForbidden,
			dto.NewErrorResponse("You do not have permission to access this resource"))
	}
}

// CallerID returns the authenticated user's id from the request context
func CallerID(ctx *gin.Context) (int64, bool) {
	value, exists := ctx.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}

// CallerRole returns the authenticated user's role from the request context
func CallerRole(ctx *gin.Context) (models.Role, bool) {
	value, exists := ctx.Get(ContextUserRole)
	if !exists {
		return "", false
	}
	role, ok := value.(models.Role)
	return role, ok
}

func abortUnauthorized(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
}
