package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"littlelemon/entity"
	"littlelemon/repository"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, carts *repository.CartRepository, menus *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: carts, MenuRepo: menus}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity"`
}

type UpdateCartItemIn struct {
	Quantity int `json:"quantity"`
}

// Get returns the cart lines plus the running total.
func (s *CartService) Get(userID uint) ([]entity.CartItem, decimal.Decimal, error) {
	items, err := s.CartRepo.ListItems(userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price)
	}
	return items, total, nil
}

// Add puts the menu item in the cart at today's price. When the line
// already exists its quantity is replaced, not summed, and the price
// snapshot is refreshed.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.CartItem, error) {
	if in.Quantity < 1 {
		return nil, ErrQuantityInvalid
	}

	menu, err := s.MenuRepo.FindByID(in.MenuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}

	line := &entity.CartItem{
		UserID:     userID,
		MenuItemID: menu.ID,
		Quantity:   in.Quantity,
		UnitPrice:  menu.Price,
		Price:      menu.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, line)
	})
	if err != nil {
		return nil, err
	}
	// the upsert's update branch does not backfill line.ID on every
	// driver, read back by key
	return s.CartRepo.GetItemByMenuItem(userID, menu.ID)
}

func (s *CartService) GetItem(userID, itemID uint) (*entity.CartItem, error) {
	item, err := s.CartRepo.GetItem(userID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartItemNotFound
	}
	return item, err
}

// UpdateQty replaces the line quantity and refreshes the unit price
// snapshot from the menu, same as re-adding the item.
func (s *CartService) UpdateQty(userID, itemID uint, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, ErrQuantityInvalid
	}
	item, err := s.GetItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	menu, err := s.MenuRepo.FindByID(item.MenuItemID)
	if err != nil {
		return nil, err
	}

	unit := menu.Price
	price := unit.Mul(decimal.NewFromInt(int64(quantity)))
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.UpdateItem(tx, userID, itemID, quantity, unit, price)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCartItemNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetItem(userID, itemID)
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.RemoveItem(tx, userID, itemID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCartItemNotFound
		}
		return nil
	})
}

// RemoveMenuItem drops the line holding that menu item; absent is a
// no-op.
func (s *CartService) RemoveMenuItem(userID, menuItemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		_, err := s.CartRepo.RemoveByMenuItem(tx, userID, menuItemID)
		return err
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
