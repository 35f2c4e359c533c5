package middleware

import (
	"net/http"
	"strings"

	"bahasa-indah-nusantara/config"
	"bahasa-indah-nusantara/helper"
	"bahasa-indah-nusantara/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var HTTPHelper = &helper.HTTPHelper{}

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization header required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims := &Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})

		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid token: "+err.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		if !token.Valid {
			HTTPHelper.SendUnauthorizedError(c, "Token is not valid", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// ActorFromContext rebuilds the request-scoped identity set by AuthMiddleware.
func ActorFromContext(c *gin.Context) models.Actor {
	actor := models.Actor{}
	if v, ok := c.Get("user_id"); ok {
		actor.UserID = v.(uint)
	}
	if v, ok := c.Get("username"); ok {
		actor.Username = v.(string)
	}
	if v, ok := c.Get("role"); ok {
		actor.Role = models.UserRole(v.(string))
	}
	return actor
}

func requireRole(notFound bool, roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			HTTPHelper.SendUnauthorizedError(c, "User role not found", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		roleStr := userRole.(string)
		for _, role := range roles {
			if roleStr == string(role) {
				c.Next()
				return
			}
		}

		// Zona admin menyamar sebagai halaman tidak ditemukan
		if notFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		} else {
			c.JSON(http.StatusForbidden, gin.H{"error": "akses ditolak"})
		}
		c.Abort()
	}
}

// RequireRole denies with 403 when the session role is not in the set.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return requireRole(false, roles...)
}

// RequireRoleNotFound denies as a generic not-found, hiding that the zone
// exists at all.
func RequireRoleNotFound(roles ...models.UserRole) gin.HandlerFunc {
	return requireRole(true, roles...)
}

// ServiceKey gates the privileged endpoints behind the server-held
// service-role credential. No user session is involved.
func ServiceKey(serviceRoleKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if serviceRoleKey == "" || c.GetHeader("X-Service-Key") != serviceRoleKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "service role key required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
