package controllers

import (
	"github.com/gin-gonic/gin"

	"littlelemon/pkg/resp"
	"littlelemon/repository"
	"littlelemon/services"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /menu-items?category=&search=&ordering=&page=&per_page=
func (ctl *MenuController) List(c *gin.Context) {
	page, perPage := pageQuery(c)
	f := repository.MenuFilter{
		CategorySlug: c.Query("category"),
		Search:       c.Query("search"),
		Ordering:     c.Query("ordering"),
		Page:         page,
		PerPage:      perPage,
	}
	items, total, err := ctl.Svc.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "page": f.Page, "perPage": f.PerPage, "total": total})
}

// GET /menu-items/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := ctl.Svc.Get(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu-items
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Svc.Create(&req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /menu-items/:id → full replace
func (ctl *MenuController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Svc.Update(id, &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, item)
}

// PATCH /menu-items/:id → only the fields present
func (ctl *MenuController) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.MenuItemPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Svc.Patch(id, &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.Svc.Delete(id); err != nil {
		writeErr(c, err)
		return
	}
	resp.NoContent(c)
}

// POST /menu-items/:id/item-of-day
func (ctl *MenuController) SetItemOfDay(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := ctl.Svc.SetItemOfDay(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, item)
}
