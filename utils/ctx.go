package utils

import (
	"github.com/gin-gonic/gin"

	"littlelemon/entity"
)

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

// CurrentRole returns the role the auth middleware derived for this
// request. Customer is the floor when nothing was set.
func CurrentRole(c *gin.Context) entity.Role {
	if v, ok := c.Get("role"); ok {
		switch r := v.(type) {
		case entity.Role:
			return r
		case string:
			return entity.Role(r)
		}
	}
	return entity.RoleCustomer
}
