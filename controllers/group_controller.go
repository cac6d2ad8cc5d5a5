package controllers

import (
	"github.com/gin-gonic/gin"

	"littlelemon/entity"
	"littlelemon/pkg/resp"
	"littlelemon/services"
)

// GroupController serves the role registry. The same three handlers
// back both the manager and the delivery crew group, bound to their
// role at route setup.
type GroupController struct{ Svc *services.GroupService }

func NewGroupController(s *services.GroupService) *GroupController {
	return &GroupController{Svc: s}
}

type AssignGroupReq struct {
	UserID uint `json:"userId" binding:"required"`
}

// GET /groups/{manager,delivery-crew}/users
func (h *GroupController) Members(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := h.Svc.Members(role)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"items": users})
	}
}

// POST /groups/{manager,delivery-crew}/users
func (h *GroupController) Assign(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AssignGroupReq
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		user, err := h.Svc.Assign(role, req.UserID)
		if err != nil {
			writeErr(c, err)
			return
		}
		resp.Created(c, gin.H{"user": user, "group": role})
	}
}

// DELETE /groups/{manager,delivery-crew}/users/:id
func (h *GroupController) Revoke(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := h.Svc.Revoke(role, id); err != nil {
			writeErr(c, err)
			return
		}
		resp.NoContent(c)
	}
}
