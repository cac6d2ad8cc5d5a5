package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"littlelemon/authz"
	"littlelemon/entity"
	"littlelemon/pkg/resp"
	"littlelemon/repository"
	"littlelemon/utils"
)

// RequireAuth verifies the bearer token and derives the acting role
// from the database on every request. The token itself only names the
// user, so group changes apply immediately.
func RequireAuth(secret string, users *repository.UserRepository, groups *repository.GroupRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			resp.Unauthorized(c, "unknown user")
			c.Abort()
			return
		}
		roles, err := groups.RolesOf(user.ID)
		if err != nil {
			resp.ServerError(c, err)
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("role", entity.HighestRole(user.IsAdmin, roles))

		c.Next()
	}
}

// Authorize gates a route on the decision table. Cart routes act on
// the caller's own cart, so ownership is the caller there; everything
// else is a role-level check and per-target decisions stay in the
// services.
func Authorize(res authz.Resource, act authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := authz.Caller{UserID: utils.CurrentUserID(c), Role: utils.CurrentRole(c)}
		target := authz.Target{}
		if res == authz.ResourceCart {
			target.OwnerID = caller.UserID
		}

		if d := authz.Decide(caller, res, act, target); !d.Allowed {
			resp.Forbidden(c, string(d.Reason))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole gates collection-level surfaces that have no single
// target to decide on, like the export and the live order feed.
func RequireRole(min entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.CurrentRole(c).AtLeast(min) {
			resp.Forbidden(c, string(authz.ReasonInsufficientRole))
			c.Abort()
			return
		}
		c.Next()
	}
}
