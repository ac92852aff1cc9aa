package middleware

import (
	"net/http"

	userRepo "github.com/SSMShehan/serendibgo-v2-sub005/database/repository/user"
	"github.com/SSMShehan/serendibgo-v2-sub005/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to accounts holding one of the given roles.
// It must run after JWTAuthUserMiddleware.
func RequireRole(users userRepo.UserRepository, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("userRole")
		if !ok {
			// Cache-hit auth carries only the user ID; resolve the role here.
			userID := c.GetString("userID")
			usr, err := users.GetByID(c.Request.Context(), userID)
			if err != nil || usr == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication error"})
				return
			}
			role = string(usr.Role)
			c.Set("userRole", role)
		}

		got, _ := role.(string)
		for _, r := range roles {
			if got == string(r) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	}
}
