package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"littlelemon/pkg/resp"
	"littlelemon/services"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// GET /orders?status=&page=&per_page= → the caller's partition
func (oc *OrderController) List(c *gin.Context) {
	in := services.ListOrdersIn{}
	in.Page, in.PerPage = pageQuery(c)
	if q := c.Query("status"); q != "" {
		status, err := strconv.ParseBool(q)
		if err != nil {
			resp.BadRequest(c, "invalid status filter")
			return
		}
		in.Status = &status
	}
	items, total, err := oc.Svc.List(caller(c), in)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "page": in.Page, "perPage": in.PerPage, "total": total})
}

// POST /orders → checkout the caller's cart
func (oc *OrderController) Checkout(c *gin.Context) {
	order, err := oc.Svc.Checkout(caller(c).UserID)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := oc.Svc.Get(caller(c), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT/PATCH /orders/:id → status and/or crew assignment
func (oc *OrderController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.OrderPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Svc.Update(caller(c), id, req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := oc.Svc.Delete(caller(c), id); err != nil {
		writeErr(c, err)
		return
	}
	resp.NoContent(c)
}

type AssignDeliveryReq struct {
	DeliveryCrewID uint `json:"deliveryCrewId" binding:"required"`
}

// PATCH /orders/:id/assign-delivery
func (oc *OrderController) AssignDelivery(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req AssignDeliveryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Svc.AssignCrew(caller(c), id, req.DeliveryCrewID)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/delivered
func (oc *OrderController) MarkDelivered(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := oc.Svc.MarkDelivered(caller(c), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/export → xlsx download, one row per order line
func (oc *OrderController) Export(c *gin.Context) {
	orders, err := oc.Svc.ExportAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	headers := []string{
		"OrderID", "Reference", "Customer", "DeliveryCrew", "Status",
		"MenuItem", "Quantity", "UnitPrice", "LinePrice", "OrderTotal", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		status := "pending"
		if o.Status {
			status = "delivered"
		}
		crew := ""
		if o.DeliveryCrew != nil {
			crew = o.DeliveryCrew.Email
		}
		for _, it := range o.OrderItems {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.Reference)
			row.AddCell().SetValue(o.User.Email)
			row.AddCell().SetValue(crew)
			row.AddCell().SetValue(status)
			row.AddCell().SetValue(it.MenuItem.Title)
			row.AddCell().SetValue(it.Quantity)
			row.AddCell().SetValue(it.UnitPrice.String())
			row.AddCell().SetValue(it.Price.String())
			row.AddCell().SetValue(o.Total.String())
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}
	}

	c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to write export"})
		return
	}
}
