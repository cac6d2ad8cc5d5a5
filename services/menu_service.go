// services/menu_service.go
package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"littlelemon/entity"
	"littlelemon/repository"
)

var minPrice = decimal.NewFromInt(5)

// MenuService owns the menu catalog and its category lookup.
type MenuService struct {
	DB       *gorm.DB
	MenuRepo *repository.MenuRepository
	CatRepo  *repository.CategoryRepository
}

func NewMenuService(db *gorm.DB, menus *repository.MenuRepository, cats *repository.CategoryRepository) *MenuService {
	return &MenuService{DB: db, MenuRepo: menus, CatRepo: cats}
}

// ----- DTOs from Controller -----

type MenuItemIn struct {
	Title      string          `json:"title" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	Featured   bool            `json:"featured"`
	CategoryID uint            `json:"categoryId" binding:"required"`
}

type MenuItemPatch struct {
	Title      *string          `json:"title"`
	Price      *decimal.Decimal `json:"price"`
	Featured   *bool            `json:"featured"`
	CategoryID *uint            `json:"categoryId"`
}

type CategoryIn struct {
	Slug  string `json:"slug" binding:"required"`
	Title string `json:"title" binding:"required"`
}

func (s *MenuService) List(f repository.MenuFilter) ([]entity.MenuItem, int64, error) {
	return s.MenuRepo.List(f)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.MenuRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuItemNotFound
	}
	return item, err
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	if err := s.validate(in.Price, in.CategoryID); err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		Title:      in.Title,
		Price:      in.Price,
		Featured:   in.Featured,
		CategoryID: in.CategoryID,
	}
	if err := s.MenuRepo.Create(item); err != nil {
		return nil, err
	}
	return s.Get(item.ID)
}

// Update replaces the whole item (PUT).
func (s *MenuService) Update(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if err := s.validate(in.Price, in.CategoryID); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"title":       in.Title,
		"price":       in.Price,
		"featured":    in.Featured,
		"category_id": in.CategoryID,
	}
	if err := s.MenuRepo.UpdateFields(id, updates); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Patch updates only the fields present (PATCH).
func (s *MenuService) Patch(id uint, in *MenuItemPatch) (*entity.MenuItem, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Price != nil {
		if in.Price.LessThan(minPrice) {
			return nil, ErrPriceInvalid
		}
		updates["price"] = *in.Price
	}
	if in.Featured != nil {
		updates["featured"] = *in.Featured
	}
	if in.CategoryID != nil {
		if err := s.categoryExists(*in.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *in.CategoryID
	}
	if len(updates) == 0 {
		return nil, ErrNoFields
	}

	if err := s.MenuRepo.UpdateFields(id, updates); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete refuses to drop an item that appears in order history.
func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	count, err := s.MenuRepo.CountOrderLines(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrMenuItemInUse
	}
	if err := s.MenuRepo.Delete(id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return ErrMenuItemInUse
		}
		return err
	}
	return nil
}

// SetItemOfDay promotes the item to the single featured one.
func (s *MenuService) SetItemOfDay(id uint) (*entity.MenuItem, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.MenuRepo.SetItemOfDay(tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrMenuItemNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *MenuService) Categories() ([]entity.Category, error) {
	return s.CatRepo.List()
}

func (s *MenuService) CreateCategory(in *CategoryIn) (*entity.Category, error) {
	cat := &entity.Category{Slug: in.Slug, Title: in.Title}
	if err := s.CatRepo.Create(cat); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return cat, nil
}

// DeleteCategory refuses while menu items still reference it.
func (s *MenuService) DeleteCategory(id uint) error {
	if err := s.categoryExists(id); err != nil {
		return err
	}
	count, err := s.CatRepo.CountMenuItems(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	if err := s.CatRepo.Delete(id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return ErrCategoryInUse
		}
		return err
	}
	return nil
}

func (s *MenuService) validate(price decimal.Decimal, categoryID uint) error {
	if price.LessThan(minPrice) {
		return ErrPriceInvalid
	}
	return s.categoryExists(categoryID)
}

func (s *MenuService) categoryExists(id uint) error {
	if _, err := s.CatRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}
