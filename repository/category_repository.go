package repository

import (
	"gorm.io/gorm"

	"littlelemon/entity"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("id").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// CountMenuItems reports how many menu items still sit in the
// category; deletion is refused while any remain.
func (r *CategoryRepository) CountMenuItems(catID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).
		Where("category_id = ?", catID).
		Count(&count).Error
	return count, err
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}
