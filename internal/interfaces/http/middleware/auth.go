// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/Zevk4/levelup-store/internal/config"
	"github.com/Zevk4/levelup-store/internal/domain/auth"
	pkgauth "github.com/Zevk4/levelup-store/internal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates JWT authentication middleware
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	jwtManager := pkgauth.NewJWTManager(cfg)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenString := pkgauth.ExtractTokenFromHeader(authHeader)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("user_name", claims.Name)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// AdminMiddleware ensures the authenticated user has the admin role
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		if role.(string) != auth.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// IdentityFromContext extracts the authenticated identity from gin context
func IdentityFromContext(c *gin.Context) (auth.Identity, bool) {
	email, exists := c.Get("user_email")
	if !exists {
		return auth.Identity{}, false
	}

	name, _ := c.Get("user_name")
	role, _ := c.Get("user_role")

	return auth.Identity{
		Name:  name.(string),
		Email: email.(string),
		Role:  role.(string),
	}, true
}
