package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"littlelemon/authz"
	"littlelemon/pkg/resp"
	"littlelemon/services"
	"littlelemon/utils"
)

// caller packs the identity the middleware stored into the shape the
// services decide on.
func caller(c *gin.Context) authz.Caller {
	return authz.Caller{UserID: utils.CurrentUserID(c), Role: utils.CurrentRole(c)}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func pageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	return page, perPage
}

// writeErr maps the service sentinels onto HTTP statuses; anything
// unknown is a 500.
func writeErr(c *gin.Context, err error) {
	var denied *services.AuthzError
	if errors.As(err, &denied) {
		resp.Forbidden(c, denied.Error())
		return
	}
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrUserNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrDuplicate),
		errors.Is(err, services.ErrMenuItemInUse),
		errors.Is(err, services.ErrCategoryInUse),
		errors.Is(err, services.ErrAlreadyDelivered):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrQuantityInvalid),
		errors.Is(err, services.ErrPriceInvalid),
		errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrNoFields),
		errors.Is(err, services.ErrCrewInvalid),
		errors.Is(err, services.ErrTransitionInvalid):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
