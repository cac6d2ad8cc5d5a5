package repository

import (
	"gorm.io/gorm"

	"littlelemon/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// OrderVisibility narrows listing to what the caller may see:
// everything, assigned deliveries, or own orders.
type OrderVisibility struct {
	All    bool
	CrewID uint
	UserID uint
}

type OrderFilter struct {
	Status  *bool
	Page    int
	PerPage int
}

func (r *OrderRepository) ListOrders(v OrderVisibility, f OrderFilter) ([]entity.Order, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PerPage <= 0 || f.PerPage > 100 {
		f.PerPage = 20
	}
	offset := (f.Page - 1) * f.PerPage

	base := r.DB.Model(&entity.Order{})
	switch {
	case v.All:
	case v.CrewID != 0:
		base = base.Where("delivery_crew_id = ?", v.CrewID)
	default:
		base = base.Where("user_id = ?", v.UserID)
	}
	if f.Status != nil {
		base = base.Where("status = ?", *f.Status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := base.Order("id DESC").Limit(f.PerPage).Offset(offset).Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders/:id → detail with lines
func (r *OrderRepository) GetOrderWithItems(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("OrderItems").
		Preload("OrderItems.MenuItem").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusGuard flips status only while the order still sits in
// the from state; zero rows affected means someone got there first.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to bool) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdateFields(tx *gorm.DB, orderID uint, updates map[string]any) (int64, error) {
	res := tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) DeleteOrder(orderID uint) (int64, error) {
	res := r.DB.Delete(&entity.Order{}, orderID)
	return res.RowsAffected, res.Error
}

// ListAllForExport loads everything the spreadsheet needs in one go.
func (r *OrderRepository) ListAllForExport() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("User").
		Preload("DeliveryCrew").
		Preload("OrderItems").
		Preload("OrderItems.MenuItem").
		Order("id").
		Find(&orders).Error
	return orders, err
}
