// repository/menu_repository.go
package repository

import (
	"gorm.io/gorm"

	"littlelemon/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// MenuFilter carries the list query params. Ordering accepts
// price|-price|title|-title; anything else falls back to id.
type MenuFilter struct {
	CategorySlug string
	Search       string
	Ordering     string
	Page         int
	PerPage      int
}

func (r *MenuRepository) List(f MenuFilter) ([]entity.MenuItem, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PerPage <= 0 || f.PerPage > 100 {
		f.PerPage = 20
	}
	offset := (f.Page - 1) * f.PerPage

	base := r.DB.Model(&entity.MenuItem{})
	if f.CategorySlug != "" {
		base = base.Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("categories.slug = ?", f.CategorySlug)
	}
	if f.Search != "" {
		base = base.Where("LOWER(menu_items.title) LIKE LOWER(?)", "%"+f.Search+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.MenuItem
	err := base.
		Preload("Category").
		Order(orderClause(f.Ordering)).
		Limit(f.PerPage).Offset(offset).
		Find(&items).Error
	return items, total, err
}

func orderClause(ordering string) string {
	switch ordering {
	case "price":
		return "menu_items.price ASC"
	case "-price":
		return "menu_items.price DESC"
	case "title":
		return "menu_items.title ASC"
	case "-title":
		return "menu_items.title DESC"
	default:
		return "menu_items.id ASC"
	}
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) UpdateFields(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// CountOrderLines reports how many order lines reference the item.
// Deleting an ordered item is refused before the FK ever fires.
func (r *MenuRepository) CountOrderLines(menuItemID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.OrderItem{}).
		Where("menu_item_id = ?", menuItemID).
		Count(&count).Error
	return count, err
}

// SetItemOfDay makes the item the single featured one.
func (r *MenuRepository) SetItemOfDay(tx *gorm.DB, id uint) (int64, error) {
	if err := tx.Model(&entity.MenuItem{}).
		Where("featured = ?", true).
		Update("featured", false).Error; err != nil {
		return 0, err
	}
	res := tx.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("featured", true)
	return res.RowsAffected, res.Error
}
