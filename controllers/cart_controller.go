package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"littlelemon/pkg/resp"
	"littlelemon/services"
	"littlelemon/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart/menu-items
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	items, total, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total})
}

// POST /cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.Add(uid, &req)
	if err != nil {
		// an unknown menu id in the body is a bad request, not a
		// missing resource
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.BadRequest(c, err.Error())
			return
		}
		writeErr(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /cart/menu-items/:id
func (h *CartController) GetItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.Svc.GetItem(uid, id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, item)
}

// PUT /cart/menu-items/:id
func (h *CartController) UpdateItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.UpdateCartItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.UpdateQty(uid, id, req.Quantity)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /cart/menu-items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.RemoveItem(uid, id); err != nil {
		writeErr(c, err)
		return
	}
	resp.NoContent(c)
}

// DELETE /cart/menu-items → flush, or drop one line via ?menuItemId=
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if q := c.Query("menuItemId"); q != "" {
		menuItemID, err := strconv.ParseUint(q, 10, 32)
		if err != nil || menuItemID == 0 {
			resp.BadRequest(c, "invalid menuItemId")
			return
		}
		if err := h.Svc.RemoveMenuItem(uid, uint(menuItemID)); err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.NoContent(c)
		return
	}
	if err := h.Svc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
