package controllers

import (
	"github.com/gin-gonic/gin"

	"littlelemon/pkg/resp"
	"littlelemon/services"
)

type CategoryController struct{ Svc *services.MenuService }

func NewCategoryController(s *services.MenuService) *CategoryController {
	return &CategoryController{Svc: s}
}

// GET /categories
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.Svc.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// POST /categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ctl.Svc.CreateCategory(&req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, cat)
}

// DELETE /categories/:id → refused while items remain in it
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.Svc.DeleteCategory(id); err != nil {
		writeErr(c, err)
		return
	}
	resp.NoContent(c)
}
