// middlewares/ws_auth.go
package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"littlelemon/entity"
	"littlelemon/repository"
	"littlelemon/utils"
)

// WSAuth checks the JWT from either the query string or the header.
// Browser websocket clients cannot set headers, so ?token= comes first.
func WSAuth(secret string, users *repository.UserRepository, groups *repository.GroupRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		if t := c.Query("token"); t != "" {
			tokenStr = t
		} else {
			h := c.GetHeader("Authorization")
			if h != "" && strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}

		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}
		roles, err := groups.RolesOf(user.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Set("userId", user.ID)
		c.Set("role", entity.HighestRole(user.IsAdmin, roles))

		c.Next()
	}
}
