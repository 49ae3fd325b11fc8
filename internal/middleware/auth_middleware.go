// auth_middleware.go
package middleware

import (
	"net/http"

	"luxe-store-api/internal/service"

	"github.com/gin-gonic/gin"
)

const AdminCookie = "admin_token"

// Middleware que valida la cookie JWT del admin y guarda su email
// en el contexto. Todas las rutas de back-office pasan por acá.
func AdminAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminCookie)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session cookie"})
			c.Abort()
			return
		}

		email, err := authService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			c.Abort()
			return
		}

		c.Set("adminEmail", email)
		c.Next()
	}
}
