package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"littlelemon/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) ListItems(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).
		Preload("MenuItem").
		Preload("MenuItem.Category").
		Order("id").
		Find(&items).Error
	return items, err
}

// ListItemsForUpdate reads the cart inside tx, locking the rows on
// drivers that support it so quantity edits and removals serialize
// against checkout. sqlite serializes writers on its own.
func (r *CartRepository) ListItemsForUpdate(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	q := tx.Where("user_id = ?", userID).Order("id")
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var items []entity.CartItem
	err := q.Find(&items).Error
	return items, err
}

func (r *CartRepository) GetItem(userID, itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.DB.Where("id = ? AND user_id = ?", itemID, userID).
		Preload("MenuItem").
		Preload("MenuItem.Category").
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) GetItemByMenuItem(userID, menuItemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.DB.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Preload("MenuItem").
		Preload("MenuItem.Category").
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertItem adds the line, or replaces quantity and re-snapshots the
// unit price when the user already holds this menu item. One INSERT
// with ON CONFLICT DO UPDATE, so the loser of a concurrent add for the
// same line merges instead of failing.
func (r *CartRepository) UpsertItem(tx *gorm.DB, row *entity.CartItem) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.Assignments(replaceValues(row)),
	}).Create(row).Error
}

func replaceValues(row *entity.CartItem) map[string]any {
	return map[string]any{
		"quantity":   row.Quantity,
		"unit_price": row.UnitPrice,
		"price":      row.Price,
	}
}

// UpdateItem replaces quantity and snapshot on one line, scoped to the
// owner. Zero rows affected means the line is not theirs or gone.
func (r *CartRepository) UpdateItem(tx *gorm.DB, userID, itemID uint, quantity int, unitPrice, price decimal.Decimal) (int64, error) {
	res := tx.Model(&entity.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Updates(map[string]any{
			"quantity":   quantity,
			"unit_price": unitPrice,
			"price":      price,
		})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) (int64, error) {
	res := tx.Where("id = ? AND user_id = ?", itemID, userID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) RemoveByMenuItem(tx *gorm.DB, userID, menuItemID uint) (int64, error) {
	res := tx.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

// RemoveLines deletes exactly the given cart line IDs. Checkout uses
// it so a line added after its snapshot read stays in the cart.
func (r *CartRepository) RemoveLines(tx *gorm.DB, userID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Where("user_id = ? AND id IN ?", userID, ids).Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
