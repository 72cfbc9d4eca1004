package auth

import (
	"errors"
	"net/http"
	"strings"

	"fitcircle/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const principalKey = "auth.principal"

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

// CanActFor reports whether the principal may read or change a resource
// owned by ownerID. Managers and above act for anyone.
func (p Principal) CanActFor(ownerID uuid.UUID) bool {
	return p.UserID == ownerID || p.Role.HasAtLeast(RoleManager)
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: msg})
}

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			unauthorized(c, "Token is empty")
			return
		}

		claims, err := ValidateToken(tokenString, secret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				unauthorized(c, "Token expired")
			default:
				unauthorized(c, "Invalid or malformed token")
			}
			return
		}

		if claims.TokenType != tokenTypeAccess {
			unauthorized(c, "Access token required")
			return
		}

		SetPrincipal(c, Principal{UserID: claims.UserID, Email: claims.Email, Role: claims.Role})
		c.Next()
	}
}

// RequireRole lets through callers whose role has at least min's priority.
func RequireRole(min Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			unauthorized(c, "User role not found")
			return
		}

		if !p.Role.HasAtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "Insufficient permissions", Kind: "forbidden"})
			return
		}

		c.Next()
	}
}

func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	p, ok := PrincipalFrom(c)
	if !ok {
		return uuid.Nil, false
	}
	return p.UserID, true
}

// MustPrincipal returns the caller or writes a 401.
func MustPrincipal(c *gin.Context) (Principal, bool) {
	p, ok := PrincipalFrom(c)
	if !ok {
		unauthorized(c, "User not authenticated")
	}
	return p, ok
}
